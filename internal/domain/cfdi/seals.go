package cfdi

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// Longitudes de los valores ilustrativos que ocupan el lugar de sellos y QR.
const (
	SealLength   = 100
	QRCodeLength = 500
)

const sealAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomString genera n caracteres alfanuméricos aleatorios.
func RandomString(n int) (string, error) {
	limit := big.NewInt(int64(len(sealAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generar cadena aleatoria: %w", err)
		}
		buf[i] = sealAlphabet[idx.Int64()]
	}
	return string(buf), nil
}

// PlaceholderSeals genera los tres sellos y el contenido del QR.
// No son firmas: no dependen del contenido del comprobante.
func PlaceholderSeals() (entity.Seals, string, error) {
	var (
		seals entity.Seals
		err   error
	)
	if seals.CFDI, err = RandomString(SealLength); err != nil {
		return entity.Seals{}, "", err
	}
	if seals.SAT, err = RandomString(SealLength); err != nil {
		return entity.Seals{}, "", err
	}
	if seals.CertificationChain, err = RandomString(SealLength); err != nil {
		return entity.Seals{}, "", err
	}
	qr, err := RandomString(QRCodeLength)
	if err != nil {
		return entity.Seals{}, "", err
	}
	return seals, qr, nil
}
