package pdf

import (
	"context"
	"errors"
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EMISOR: empresa + RFC + régimen fiscal │ FACTURA + folio    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Datos del Receptor      │  Detalles de la Factura           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONCEPTOS: clave | descripción | unidad | cant | p.u | imp │
//	│  TOTALES: subtotal / IVA 16% / total / total con letra       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SELLOS DIGITALES (3 cadenas)            │  QR               │
//	└─────────────────────────────────────────────────────────────┘

var _ ports.InvoiceRenderer = (*InvoiceRenderer)(nil)

// ErrNilView se devuelve cuando el renderer recibe una vista vacía.
var ErrNilView = errors.New("pdf: vista nula")

var conceptSizes = []int{2, 4, 1, 1, 2, 2}

// InvoiceRenderer implementa ports.InvoiceRenderer usando Maroto v2.
type InvoiceRenderer struct{}

// NewInvoiceRenderer construye el renderer.
func NewInvoiceRenderer() *InvoiceRenderer { return &InvoiceRenderer{} }

// RenderInvoice genera el PDF de la factura y devuelve sus bytes.
func (r *InvoiceRenderer) RenderInvoice(_ context.Context, v *entity.InvoiceView) ([]byte, error) {
	if v == nil {
		return nil, ErrNilView
	}
	inv := v.Invoice

	m := newDocument("Factura CFDI", inv.CompanyName)

	m.AddRows(issuerHeaderRow(
		inv.CompanyName,
		inv.IssuerRFC,
		"Régimen Fiscal: "+v.RegimenFiscal.Label(),
		"FACTURA",
		inv.ID,
		inv.IssuedAt.Format(dateLayout),
	))
	m.AddRows(separator())
	m.AddRows(partiesRow(v))
	m.AddRows(separator())

	m.AddRows(sectionTitleRow("Conceptos"))
	m.AddRows(headerCells(
		[]string{"Clave", "Descripción", "Unidad", "Cantidad", "Precio Unitario", "Importe"},
		conceptSizes,
	))
	m.AddRows(valueCells([]string{
		v.Product.Code,
		v.Product.Description,
		v.Product.Unit,
		strconv.Itoa(inv.Quantity),
		formatMoney(inv.UnitPrice),
		formatMoney(inv.Amount),
	}, conceptSizes))

	m.AddRows(separator())
	m.AddRows(sectionTitleRow("Totales"))
	m.AddRows(
		totalRow("Subtotal:", formatMoney(inv.Subtotal), false),
		totalRow("IVA 16%:", formatMoney(inv.Tax), false),
		totalRow("Total:", formatMoney(inv.Total), true),
	)
	m.AddRows(inWordsRow(inv.TotalInWords))

	m.AddRows(separator())
	m.AddRows(sealsRows(inv.Seals, inv.QRCode)...)
	m.AddRows(legendRow("Este documento es una representación impresa de un CFDI."))

	return generate(m)
}

// partiesRow: receptor (izq) y metadatos de la factura (der).
func partiesRow(v *entity.InvoiceView) core.Row {
	inv := v.Invoice
	details := []string{
		"Tipo de Comprobante: " + v.TipoComprobante.Label(),
		"Uso CFDI: " + v.UsoCFDI.Label(),
		"Fecha y Lugar de Expedición: " + inv.IssuedAt.Format(dateLayout) + ", " + inv.IssuePlace,
		"Forma de Pago: " + v.FormaPago.Label(),
		"Método de Pago: " + v.MetodoPago.Label(),
		"Moneda - Tipo de Cambio: " + nonEmpty(inv.Currency, "MXN") + " - " + inv.ExchangeRate.StringFixed(2),
	}
	return row.New(infoHeight(len(details))).Add(
		infoCol(5, "Datos del Receptor", "RFC: "+inv.ReceiverRFC),
		infoCol(7, "Detalles de la Factura", details...),
	)
}
