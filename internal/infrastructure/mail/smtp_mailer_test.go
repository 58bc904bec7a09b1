package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func sampleMessage() ports.Message {
	return ports.Message{
		To:      "cliente@farmacia.mx",
		Subject: "Factura 123 - FARMACIAS DE DIOS",
		Body:    "Adjuntamos su factura.",
		Attachments: []ports.Attachment{{
			Filename:    "Factura.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.3 contenido"),
		}},
	}
}

func TestSMTPMailer_ArmaMensajeConAdjunto(t *testing.T) {
	d := &fakeDialer{}
	s := &SMTPMailer{dialer: d, from: "facturas@farmaciasdedios.mx"}

	require.NoError(t, s.Send(context.Background(), sampleMessage()))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"cliente@farmacia.mx"}, m.GetHeader("To"))
	assert.Equal(t, []string{"facturas@farmaciasdedios.mx"}, m.GetHeader("From"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `filename="Factura.pdf"`)
	assert.Contains(t, buf.String(), "application/pdf")
}

func TestSMTPMailer_ErrorDelServidor(t *testing.T) {
	s := &SMTPMailer{dialer: &fakeDialer{err: errors.New("535 auth failed")}, from: "x@y.mx"}

	err := s.Send(context.Background(), sampleMessage())
	assert.ErrorContains(t, err, "cliente@farmacia.mx")
}

func TestSMTPMailer_ContextoCancelado(t *testing.T) {
	d := &fakeDialer{}
	s := &SMTPMailer{dialer: d, from: "x@y.mx"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, sampleMessage()), context.Canceled)
	assert.Empty(t, d.sent)
}

func TestNoopMailer(t *testing.T) {
	var buf bytes.Buffer
	n := NewNoopMailer(zerolog.New(&buf))

	require.NoError(t, n.Send(context.Background(), sampleMessage()))
	assert.Contains(t, buf.String(), "cliente@farmacia.mx")
}
