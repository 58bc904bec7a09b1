// seed_sat genera una migración SQL que pobla un catálogo SAT a partir de la
// exportación CSV oficial (Excel del SAT guardado como CSV, codificación Windows-1252).
//
// Uso: go run ./cmd/seed_sat <catalogo> <archivo.csv>
//
// catalogo es uno de tipo_comprobante, uso_cfdi, regimen_fiscal, metodo_pago,
// forma_pago, regimen_laboral, banco, percepcion, deduccion o productos.
// Escribe internal/infrastructure/postgres/migrations/<N>_seed_<catalogo>.{up,down}.sql
// con N = siguiente versión libre.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed_sat <catalogo> <archivo.csv>")
		os.Exit(2)
	}
	catalog, csvPath := os.Args[1], os.Args[2]

	target, err := targetFor(catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, err := readRows(transform.NewReader(f, charmap.Windows1252.NewDecoder()), target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations")
	version, err := nextVersion(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Versión de migración: %v\n", err)
		os.Exit(1)
	}
	base := filepath.Join(dir, fmt.Sprintf("%06d_seed_%s", version, catalog))

	if err := writeFile(base+".up.sql", func(f *os.File) error { return writeUp(f, target, rows, csvPath) }); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir migración: %v\n", err)
		os.Exit(1)
	}
	if err := writeFile(base+".down.sql", func(f *os.File) error { return writeDown(f, target, rows) }); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir migración: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s.{up,down}.sql: %d claves en %s\n", base, len(rows), target.table)
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
