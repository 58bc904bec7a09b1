package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/infrastructure/postgres"
)

const productsCatalog = "productos"

// target describe la tabla destino y cuántas columnas espera del CSV.
type target struct {
	table    string
	keyCol   string
	products bool
}

type row struct {
	code        string
	description string
	unit        string
	price       decimal.Decimal
}

func targetFor(catalog string) (target, error) {
	if catalog == productsCatalog {
		return target{table: "productos_servicios", keyCol: "clave_producto_servicio", products: true}, nil
	}
	table, err := postgres.CatalogTable(entity.CatalogKind(catalog))
	if err != nil {
		return target{}, err
	}
	return target{table: table, keyCol: "clave"}, nil
}

// readRows lee el CSV ya decodificado a UTF-8. La primera fila es encabezado.
// Columnas: clave,descripcion o, para productos, clave,unidad,descripcion,precio.
// Claves repetidas conservan la última aparición.
func readRows(r io.Reader, t target) ([]row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	want := 2
	if t.products {
		want = 4
	}

	byCode := make(map[string]row)
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			continue
		}
		if len(rec) < want || strings.TrimSpace(rec[0]) == "" {
			continue
		}

		rw := row{code: strings.TrimSpace(rec[0])}
		if t.products {
			rw.unit = strings.TrimSpace(rec[1])
			rw.description = strings.TrimSpace(rec[2])
			price, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
			if err != nil || price.IsNegative() {
				return nil, fmt.Errorf("línea %d: precio inválido %q", line, rec[3])
			}
			rw.price = price
		} else {
			rw.description = strings.TrimSpace(rec[1])
		}
		byCode[rw.code] = rw
	}
	if len(byCode) == 0 {
		return nil, errors.New("el CSV no contiene claves")
	}

	rows := make([]row, 0, len(byCode))
	for _, rw := range byCode {
		rows = append(rows, rw)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].code < rows[j].code })
	return rows, nil
}

func writeUp(w io.Writer, t target, rows []row, source string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Catálogo SAT %s\n-- Generado desde %s\n\n", t.table, source)
	if t.products {
		fmt.Fprintf(&b, "INSERT INTO %s (%s, unidad, descripcion, precio_unitario) VALUES\n", t.table, t.keyCol)
	} else {
		fmt.Fprintf(&b, "INSERT INTO %s (%s, descripcion) VALUES\n", t.table, t.keyCol)
	}
	for i, rw := range rows {
		if t.products {
			fmt.Fprintf(&b, "  ('%s', '%s', '%s', %s)", escapeSQL(rw.code), escapeSQL(rw.unit), escapeSQL(rw.description), rw.price.StringFixed(2))
		} else {
			fmt.Fprintf(&b, "  ('%s', '%s')", escapeSQL(rw.code), escapeSQL(rw.description))
		}
		if i < len(rows)-1 {
			b.WriteString(",\n")
		} else {
			b.WriteString("\n")
		}
	}
	if t.products {
		fmt.Fprintf(&b, "ON CONFLICT (%s) DO UPDATE SET unidad = EXCLUDED.unidad, descripcion = EXCLUDED.descripcion, precio_unitario = EXCLUDED.precio_unitario;\n", t.keyCol)
	} else {
		fmt.Fprintf(&b, "ON CONFLICT (%s) DO UPDATE SET descripcion = EXCLUDED.descripcion;\n", t.keyCol)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeDown borra solo las claves que no estén referenciadas.
func writeDown(w io.Writer, t target, rows []row) error {
	codes := make([]string, len(rows))
	for i, rw := range rows {
		codes[i] = "'" + escapeSQL(rw.code) + "'"
	}
	_, err := fmt.Fprintf(w, "DELETE FROM %s WHERE %s IN (%s);\n", t.table, t.keyCol, strings.Join(codes, ", "))
	return err
}

var migrationName = regexp.MustCompile(`^(\d+)_.*\.(up|down)\.sql$`)

// nextVersion devuelve la versión siguiente a la mayor encontrada en dir.
func nextVersion(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	highest := 0
	for _, e := range entries {
		m := migrationName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
