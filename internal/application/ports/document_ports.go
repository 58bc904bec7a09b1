package ports

import (
	"context"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// InvoiceRenderer produce la representación impresa (PDF) de una factura.
// Recibe la vista con todas las claves ya resueltas; un view nil es error.
type InvoiceRenderer interface {
	RenderInvoice(ctx context.Context, view *entity.InvoiceView) ([]byte, error)
}

// PayrollRenderer produce el PDF de un recibo de nómina.
type PayrollRenderer interface {
	RenderPayrollReceipt(ctx context.Context, view *entity.PayrollReceiptView) ([]byte, error)
}

// DocumentMirror replica un PDF ya confirmado en almacenamiento externo
// (S3/MinIO). Una falla aquí no invalida el comprobante.
type DocumentMirror interface {
	PutPDF(ctx context.Context, key string, pdf []byte) error
}

// Attachment archivo adjunto de un correo.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message correo saliente.
type Message struct {
	To          string
	Subject     string
	Body        string
	Attachments []Attachment
}

// Mailer envía correos. El adaptador SMTP o uno no-op cuando no hay servidor.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
