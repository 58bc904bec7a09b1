package payroll

import (
	"context"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

// PayrollTxRunner ejecuta fn dentro de una transacción que incluye el recibo y su PDF.
type PayrollTxRunner interface {
	RunPayroll(ctx context.Context, fn func(
		receiptRepo repository.PayrollReceiptRepository,
		documentRepo repository.DocumentRepository,
	) error) error
}

// ReceiptObjectKey llave del PDF de un recibo en object storage.
func ReceiptObjectKey(receiptID string) string {
	return "nomina/" + receiptID + ".pdf"
}
