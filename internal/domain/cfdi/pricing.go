// Package cfdi contiene las reglas de dominio del CFDI de la farmacia: cálculo de
// importes, validaciones de cuenta, importe con letra y sellos ilustrativos.
package cfdi

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/miriamyi01/facturas-cfdi/internal/domain"
)

// TaxRate es la tasa de IVA aplicada a todos los conceptos (16 %).
var TaxRate = decimal.RequireFromString("0.16")

// MaxQuantity es la cantidad más alta que cabe en la columna INTEGER de facturas.
const MaxQuantity = math.MaxInt32

// MaxAmount es el primer importe que ya no cabe en las columnas NUMERIC(18,4).
var MaxAmount = decimal.New(1, 14)

// Amounts son los importes derivados de un concepto.
type Amounts struct {
	UnitPrice decimal.Decimal
	Quantity  int
	Amount    decimal.Decimal // importe del concepto, igual al subtotal
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// Calculate aplica subtotal = cantidad × precio, iva = subtotal × 0.16 y
// total = subtotal + iva. No redondea: el redondeo es solo de presentación.
func Calculate(quantity int, unitPrice decimal.Decimal) (Amounts, error) {
	if quantity <= 0 {
		return Amounts{}, fmt.Errorf("%w: la cantidad debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if quantity > MaxQuantity {
		return Amounts{}, fmt.Errorf("%w: la cantidad no puede exceder %d", domain.ErrInvalidInput, MaxQuantity)
	}
	if unitPrice.IsNegative() {
		return Amounts{}, fmt.Errorf("%w: precio unitario negativo", domain.ErrInvalidInput)
	}
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	tax := subtotal.Mul(TaxRate)
	total := subtotal.Add(tax)
	if total.GreaterThanOrEqual(MaxAmount) {
		return Amounts{}, fmt.Errorf("%w: el total excede el importe máximo permitido", domain.ErrInvalidInput)
	}
	return Amounts{
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Amount:    subtotal,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
	}, nil
}

// NetPay calcula el importe de un recibo de nómina: percepciones - deducciones.
func NetPay(perceptions, deductions decimal.Decimal) (decimal.Decimal, error) {
	if perceptions.IsNegative() || deductions.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: percepciones y deducciones no pueden ser negativas", domain.ErrInvalidInput)
	}
	if perceptions.GreaterThanOrEqual(MaxAmount) || deductions.GreaterThanOrEqual(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: importe excede el máximo permitido", domain.ErrInvalidInput)
	}
	net := perceptions.Sub(deductions)
	if net.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: las deducciones superan a las percepciones", domain.ErrInvalidInput)
	}
	return net, nil
}
