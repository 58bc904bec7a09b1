package billing

import (
	"context"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

// BillingTxRunner ejecuta fn dentro de una transacción que incluye la factura y su PDF.
// Si fn devuelve error no queda ninguno de los dos registros.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		documentRepo repository.DocumentRepository,
	) error) error
}

// Caller identidad del usuario autenticado (viene del JWT).
type Caller struct {
	UserID string
	RFC    string
	Role   string
}

// IsEmployee indica si el usuario puede operar sobre comprobantes de terceros.
func (c Caller) IsEmployee() bool { return c.Role == entity.RoleEmpleado }

// InvoiceObjectKey llave del PDF de una factura en object storage.
func InvoiceObjectKey(invoiceID string) string {
	return "facturas/" + invoiceID + ".pdf"
}
