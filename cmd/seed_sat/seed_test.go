package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestTargetFor(t *testing.T) {
	tg, err := targetFor("uso_cfdi")
	require.NoError(t, err)
	assert.Equal(t, "uso_destino_cfdi", tg.table)
	assert.False(t, tg.products)

	tg, err = targetFor("productos")
	require.NoError(t, err)
	assert.Equal(t, "productos_servicios", tg.table)

	_, err = targetFor("municipios")
	assert.Error(t, err)
}

func TestReadRows_DecodificaWindows1252(t *testing.T) {
	// "Nómina" codificado en Windows-1252: ó = 0xF3.
	raw := []byte("c_TipoDeComprobante,Descripción\nN,N\xf3mina\nI,Ingreso\n")
	tg, _ := targetFor("tipo_comprobante")

	rows, err := readRows(transform.NewReader(bytes.NewReader(raw), charmap.Windows1252.NewDecoder()), tg)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "I", rows[0].code)
	assert.Equal(t, "N", rows[1].code)
	assert.Equal(t, "Nómina", rows[1].description)
}

func TestReadRows_Productos(t *testing.T) {
	csvData := "clave,unidad,descripcion,precio\n01010101,H87 - Pieza,No existe en el catálogo,100.00\n01010101,H87 - Pieza,Repetida,120\n"
	tg, _ := targetFor("productos")

	rows, err := readRows(strings.NewReader(csvData), tg)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Repetida", rows[0].description, "gana la última aparición")
	assert.Equal(t, "120.00", rows[0].price.StringFixed(2))

	_, err = readRows(strings.NewReader("h\n01010101,H87,x,-5\n"), tg)
	assert.Error(t, err)
}

func TestReadRows_SinClaves(t *testing.T) {
	tg, _ := targetFor("banco")
	_, err := readRows(strings.NewReader("clave,descripcion\n"), tg)
	assert.Error(t, err)
}

func TestWriteUpDown(t *testing.T) {
	tg, _ := targetFor("banco")
	rows := []row{{code: "002", description: "BANAMEX"}, {code: "012", description: "BBVA BANCOMER'S"}}

	var up bytes.Buffer
	require.NoError(t, writeUp(&up, tg, rows, "banco.csv"))
	assert.Contains(t, up.String(), "INSERT INTO banco (clave, descripcion) VALUES")
	assert.Contains(t, up.String(), "('002', 'BANAMEX'),\n")
	assert.Contains(t, up.String(), "('012', 'BBVA BANCOMER''S')\n")
	assert.Contains(t, up.String(), "ON CONFLICT (clave)")

	var down bytes.Buffer
	require.NoError(t, writeDown(&down, tg, rows))
	assert.Equal(t, "DELETE FROM banco WHERE clave IN ('002', '012');\n", down.String())
}

func TestNextVersion(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"000001_schema.up.sql", "000002_seed_catalogs.down.sql", "LEEME.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	v, err := nextVersion(dir)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
