package repository

import (
	"context"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	ListByReceiver(ctx context.Context, rfc string, limit, offset int) ([]*entity.Invoice, error)
}

// DocumentRepository guarda el PDF de una factura o recibo, uno por propietario.
// Create devuelve ErrDocumentExists si el propietario ya tiene PDF.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Document, error)
}
