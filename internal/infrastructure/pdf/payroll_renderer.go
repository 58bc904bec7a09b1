package pdf

import (
	"context"

	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

var _ ports.PayrollRenderer = (*PayrollRenderer)(nil)

var movementSizes = []int{2, 2, 6, 2}

// PayrollRenderer implementa ports.PayrollRenderer usando Maroto v2.
type PayrollRenderer struct{}

// NewPayrollRenderer construye el renderer.
func NewPayrollRenderer() *PayrollRenderer { return &PayrollRenderer{} }

// RenderPayrollReceipt genera el PDF del recibo de nómina.
func (r *PayrollRenderer) RenderPayrollReceipt(_ context.Context, v *entity.PayrollReceiptView) ([]byte, error) {
	if v == nil {
		return nil, ErrNilView
	}
	rc := v.Receipt

	m := newDocument("Recibo de Nómina CFDI", rc.CompanyName)

	m.AddRows(issuerHeaderRow(
		rc.CompanyName,
		rc.IssuerRFC,
		"Lugar de Expedición: "+rc.IssuePlace,
		"RECIBO DE NÓMINA",
		rc.ID,
		rc.IssuedAt.Format(dateLayout),
	))
	m.AddRows(separator())
	m.AddRows(employeeRow(v))
	m.AddRows(separator())

	m.AddRows(sectionTitleRow("Percepciones y Deducciones"))
	m.AddRows(headerCells([]string{"Tipo", "Clave", "Concepto", "Importe"}, movementSizes))
	m.AddRows(
		valueCells([]string{"Percepción", v.Perception.Code, v.Perception.Description, formatMoney(rc.PerceptionValue)}, movementSizes),
		valueCells([]string{"Deducción", v.Deduction.Code, v.Deduction.Description, formatMoney(rc.DeductionValue)}, movementSizes),
	)

	m.AddRows(separator())
	m.AddRows(sectionTitleRow("Totales"))
	m.AddRows(
		totalRow("Total Percepciones:", formatMoney(rc.TotalPerceptions), false),
		totalRow("Total Deducciones:", formatMoney(rc.TotalDeductions), false),
		totalRow("Neto a Pagar:", formatMoney(rc.Amount), true),
	)
	m.AddRows(inWordsRow(rc.AmountInWords))

	m.AddRows(separator())
	m.AddRows(sealsRows(rc.Seals, rc.QRCode)...)
	m.AddRows(legendRow("Este documento es una representación impresa de un CFDI de nómina."))

	return generate(m)
}

// employeeRow: datos del empleado (izq) y del pago (der).
func employeeRow(v *entity.PayrollReceiptView) core.Row {
	e := v.Employee
	rc := v.Receipt
	employee := []string{
		"Número de Empleado: " + e.Number,
		"RFC: " + e.RFC,
		"CURP: " + e.CURP,
		"NSS: " + e.NSS,
		"Puesto: " + e.Position,
		"Departamento: " + e.Department,
		"Fecha de Ingreso: " + e.HiredAt.Format("02/01/2006"),
	}
	banco := "N/A"
	if v.Banco.Code != "" {
		banco = v.Banco.Label()
	}
	payment := []string{
		"Régimen Laboral: " + v.RegimenLaboral.Label(),
		"Fecha de Pago: " + rc.PaidAt.Format("02/01/2006"),
		"Banco: " + banco,
		"Periodicidad: " + nonEmpty(e.PayPeriodicity, "N/A"),
		"Tipo de Jornada: " + nonEmpty(e.WorkdayType, "N/A"),
		"Tipo de Contrato: " + nonEmpty(e.ContractType, "N/A"),
		"Moneda - Tipo de Cambio: " + nonEmpty(rc.Currency, "MXN") + " - " + rc.ExchangeRate.StringFixed(2),
	}
	return row.New(infoHeight(len(employee))).Add(
		infoCol(6, "Datos del Empleado", employee...),
		infoCol(6, "Datos del Pago", payment...),
	)
}
