package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/cfdi"
)

// AttachmentName nombre del PDF adjunto en el correo.
const AttachmentName = "Factura.pdf"

// SendInvoice envía por correo el PDF guardado de la factura. Si to está
// vacío se usa el correo del usuario autenticado.
func (uc *InvoiceUseCase) SendInvoice(ctx context.Context, caller Caller, invoiceID, to string) error {
	pdf, _, err := uc.DownloadPDF(ctx, caller, invoiceID)
	if err != nil {
		return err
	}

	to = strings.ToLower(strings.TrimSpace(to))
	if to == "" {
		user, err := uc.userRepo.GetByID(ctx, caller.UserID)
		if err != nil {
			return fmt.Errorf("factura: obtener usuario: %w", err)
		}
		if user == nil {
			return domain.ErrNotFound
		}
		to = user.Email
	}
	if err := cfdi.ValidateEmail(to); err != nil {
		return err
	}

	msg := ports.Message{
		To:      to,
		Subject: fmt.Sprintf("Factura %s - %s", invoiceID, uc.issuer.CompanyName),
		Body: fmt.Sprintf("Adjuntamos la representación impresa de su factura %s emitida por %s.",
			invoiceID, uc.issuer.CompanyName),
		Attachments: []ports.Attachment{{
			Filename:    AttachmentName,
			ContentType: "application/pdf",
			Data:        pdf,
		}},
	}
	if err := uc.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("factura: enviar correo: %w", err)
	}
	uc.log.Info().Str("invoice_id", invoiceID).Str("to", to).Msg("factura enviada por correo")
	return nil
}
