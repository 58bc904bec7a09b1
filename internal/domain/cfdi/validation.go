package cfdi

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/miriamyi01/facturas-cfdi/internal/domain"
)

// Longitudes fijas de identificadores fiscales y de seguridad social.
const (
	RFCLength  = 13
	CURPLength = 18
	NSSLength  = 11
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ValidateFullName exige al menos tres palabras (nombre y dos apellidos).
func ValidateFullName(name string) error {
	if len(strings.Fields(name)) < 3 {
		return domain.ErrInvalidName
	}
	return nil
}

// ValidateRFC exige exactamente 13 caracteres (persona física con homoclave).
func ValidateRFC(rfc string) error {
	if len([]rune(rfc)) != RFCLength {
		return domain.ErrInvalidRFC
	}
	return nil
}

// ValidateEmail aplica la forma local@dominio.tld.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	return nil
}

// ValidateCURP exige 18 caracteres alfanuméricos; la Ñ cuenta como uno.
func ValidateCURP(curp string) error {
	if len([]rune(curp)) != CURPLength || !isAlphanumeric(curp) {
		return domain.ErrInvalidCURP
	}
	return nil
}

// ValidateNSS exige 11 dígitos.
func ValidateNSS(nss string) error {
	if len(nss) != NSSLength {
		return domain.ErrInvalidNSS
	}
	for _, r := range nss {
		if !unicode.IsDigit(r) {
			return domain.ErrInvalidNSS
		}
	}
	return nil
}

// RequireFields devuelve ErrInvalidInput nombrando el primer campo vacío.
// fields alterna nombre y valor: "correo", email, "rfc", rfc, ...
func RequireFields(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if strings.TrimSpace(fields[i+1]) == "" {
			return fmt.Errorf("%w: el campo %s es obligatorio", domain.ErrInvalidInput, fields[i])
		}
	}
	return nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
