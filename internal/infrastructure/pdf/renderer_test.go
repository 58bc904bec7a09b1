package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/cfdi"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

func sampleSeals(t *testing.T) (entity.Seals, string) {
	t.Helper()
	seals, qr, err := cfdi.PlaceholderSeals()
	require.NoError(t, err)
	return seals, qr
}

func TestRenderInvoice_GeneraPDF(t *testing.T) {
	seals, qr := sampleSeals(t)
	view := &entity.InvoiceView{
		Invoice: entity.Invoice{
			ID:           "8f7c1e9a-0000-4000-8000-000000000001",
			CompanyName:  "FARMACIAS DE DIOS",
			IssuerRFC:    "FARA2402035H8",
			IssuePlace:   "CIUDAD DE MÉXICO",
			IssuedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			ReceiverRFC:  "ABCD010101AB1",
			Quantity:     3,
			UnitPrice:    decimal.RequireFromString("100.00"),
			Amount:       decimal.RequireFromString("300.00"),
			Subtotal:     decimal.RequireFromString("300.00"),
			Tax:          decimal.RequireFromString("48.00"),
			Total:        decimal.RequireFromString("348.00"),
			TotalInWords: "TRESCIENTOS CUARENTA Y OCHO PESOS 00/100 M.N.",
			Currency:     "MXN PESOS MEXICANOS",
			Seals:        seals,
			QRCode:       qr,
		},
		TipoComprobante: entity.CatalogEntry{Code: "I", Description: "Ingreso"},
		UsoCFDI:         entity.CatalogEntry{Code: "G03", Description: "Gastos en general"},
		RegimenFiscal:   entity.CatalogEntry{Code: "612", Description: "Personas Físicas con Actividades Empresariales y Profesionales"},
		MetodoPago:      entity.CatalogEntry{Code: "PUE", Description: "Pago en una sola exhibición"},
		FormaPago:       entity.CatalogEntry{Code: "01", Description: "Efectivo"},
		Product:         entity.Product{Code: "01010101", Unit: "PIEZA", Description: "No existe en el catálogo"},
	}

	out, err := NewInvoiceRenderer().RenderInvoice(context.Background(), view)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderInvoice_VistaNula(t *testing.T) {
	_, err := NewInvoiceRenderer().RenderInvoice(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilView)
}

func TestRenderPayrollReceipt_GeneraPDF(t *testing.T) {
	seals, qr := sampleSeals(t)
	view := &entity.PayrollReceiptView{
		Receipt: entity.PayrollReceipt{
			ID:               "rec-1",
			CompanyName:      "FARMACIAS DE DIOS",
			IssuerRFC:        "FARA2402035H8",
			IssuePlace:       "CIUDAD DE MÉXICO",
			IssuedAt:         time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
			EmployeeNumber:   "E001",
			PaidAt:           time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			PerceptionValue:  decimal.RequireFromString("10000"),
			TotalPerceptions: decimal.RequireFromString("10000"),
			DeductionValue:   decimal.RequireFromString("1500.50"),
			TotalDeductions:  decimal.RequireFromString("1500.50"),
			Amount:           decimal.RequireFromString("8499.50"),
			AmountInWords:    "OCHO MIL CUATROCIENTOS NOVENTA Y NUEVE PESOS 50/100 M.N.",
			Seals:            seals,
			QRCode:           qr,
		},
		Employee:       entity.Employee{Number: "E001", RFC: "EMPL030303EF3", CURP: "EMPL030303HDFRRN09", NSS: "12345678901"},
		RegimenLaboral: entity.CatalogEntry{Code: "02", Description: "Sueldos"},
		Perception:     entity.CatalogEntry{Code: "001", Description: "Sueldos, Salarios Rayas y Jornales"},
		Deduction:      entity.CatalogEntry{Code: "002", Description: "ISR"},
	}

	out, err := NewPayrollRenderer().RenderPayrollReceipt(context.Background(), view)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "$0.00",
		"48":         "$48.00",
		"348":        "$348.00",
		"1234.5":     "$1,234.50",
		"1000000.07": "$1,000,000.07",
		"-2500":      "-$2,500.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestSplitEvery(t *testing.T) {
	assert.Equal(t, []string{"abc", "def", "g"}, splitEvery("abcdefg", 3))
	assert.Nil(t, splitEvery("", 3))
}
