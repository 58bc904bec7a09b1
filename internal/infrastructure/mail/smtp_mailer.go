// Package mail envía los PDFs por correo vía SMTP.
package mail

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/pkg/config"
)

// dialer abstrae gomail.Dialer para tests.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*NoopMailer)(nil)
)

// SMTPMailer implementa ports.Mailer con gomail.
type SMTPMailer struct {
	dialer dialer
	from   string
}

// NewSMTPMailer construye el mailer con el servidor configurado.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// Send arma el mensaje multipart con adjuntos y lo entrega.
func (s *SMTPMailer) Send(ctx context.Context, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.dialer.DialAndSend(buildMessage(s.from, msg)); err != nil {
		return fmt.Errorf("smtp: enviar a %s: %w", msg.To, err)
	}
	return nil
}

func buildMessage(from string, msg ports.Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	for _, a := range msg.Attachments {
		data := a.Data
		m.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}
	return m
}

// NoopMailer registra el envío sin conectarse a ningún servidor. Se usa
// cuando SMTP_HOST está vacío.
type NoopMailer struct {
	log zerolog.Logger
}

// NewNoopMailer construye el mailer sin servidor.
func NewNoopMailer(log zerolog.Logger) *NoopMailer {
	return &NoopMailer{log: log}
}

// Send solo registra el mensaje.
func (n *NoopMailer) Send(_ context.Context, msg ports.Message) error {
	n.log.Info().
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("smtp deshabilitado; correo no enviado")
	return nil
}
