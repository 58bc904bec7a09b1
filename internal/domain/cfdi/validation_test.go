package cfdi_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/cfdi"
)

func TestValidateRFC_LongitudExacta(t *testing.T) {
	assert.NoError(t, cfdi.ValidateRFC("ABCD010101AB1"))
	assert.ErrorIs(t, cfdi.ValidateRFC("ABCD010101AB"), domain.ErrInvalidRFC, "12 caracteres")
	assert.ErrorIs(t, cfdi.ValidateRFC("ABCD010101AB12"), domain.ErrInvalidRFC, "14 caracteres")
	assert.ErrorIs(t, cfdi.ValidateRFC(""), domain.ErrInvalidRFC)
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"ana@farmacia.mx", "a.b@c.com.mx", "x@y.z"}
	for _, e := range valid {
		assert.NoError(t, cfdi.ValidateEmail(e), e)
	}
	invalid := []string{"sinarroba.com", "ana@dominio", "ana@@x.com", "@x.com", "ana@.", ""}
	for _, e := range invalid {
		assert.ErrorIs(t, cfdi.ValidateEmail(e), domain.ErrInvalidEmail, e)
	}
}

func TestValidateFullName_TresPalabras(t *testing.T) {
	assert.NoError(t, cfdi.ValidateFullName("MARÍA LÓPEZ PÉREZ"))
	assert.NoError(t, cfdi.ValidateFullName("  JUAN  CARLOS  RUIZ  DÍAZ "))
	assert.ErrorIs(t, cfdi.ValidateFullName("MARÍA LÓPEZ"), domain.ErrInvalidName)
	assert.ErrorIs(t, cfdi.ValidateFullName(""), domain.ErrInvalidName)
}

func TestValidateCURPyNSS(t *testing.T) {
	assert.NoError(t, cfdi.ValidateCURP("LOPM800101MDFRRR09"))
	assert.ErrorIs(t, cfdi.ValidateCURP("LOPM800101MDFRRR0"), domain.ErrInvalidCURP)
	assert.ErrorIs(t, cfdi.ValidateCURP("LOPM800101MDFRRR-9"), domain.ErrInvalidCURP)
	// La Ñ ocupa dos bytes pero es un solo carácter.
	assert.NoError(t, cfdi.ValidateCURP("MUÑM800101HDFXXX09"))
	assert.ErrorIs(t, cfdi.ValidateCURP("MUÑM800101HDFXXX0"), domain.ErrInvalidCURP)

	assert.NoError(t, cfdi.ValidateNSS("12345678901"))
	assert.ErrorIs(t, cfdi.ValidateNSS("1234567890"), domain.ErrInvalidNSS)
	assert.ErrorIs(t, cfdi.ValidateNSS("1234567890A"), domain.ErrInvalidNSS)
}

func TestRequireFields_NombraElCampoVacio(t *testing.T) {
	assert.NoError(t, cfdi.RequireFields("correo", "a@b.c", "rfc", "ABCD010101AB1"))

	err := cfdi.RequireFields("correo", "a@b.c", "calle", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "calle")
}

// ── Sellos ilustrativos ───────────────────────────────────────────────────────

func TestPlaceholderSeals_Forma(t *testing.T) {
	seals, qr, err := cfdi.PlaceholderSeals()
	assert.NoError(t, err)

	for _, s := range []string{seals.CFDI, seals.SAT, seals.CertificationChain} {
		assert.Len(t, s, cfdi.SealLength)
		assert.Empty(t, strings.Trim(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
			"solo caracteres alfanuméricos")
	}
	assert.Len(t, qr, cfdi.QRCodeLength)
	assert.NotEqual(t, seals.CFDI, seals.SAT, "cada sello se genera por separado")
}
