package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken no se recibió token (header vacío o sin valor).
	ErrMissingToken = errors.New("jwt: token requerido")
	// ErrInvalidToken firma, formato o vigencia inválidos.
	ErrInvalidToken = errors.New("jwt: token inválido o expirado")
)

// Identity es lo que la API necesita saber del usuario en cada request.
// RFC viaja en el token para filtrar facturas del receptor sin consultar la DB.
type Identity struct {
	UserID string `json:"user_id"`
	RFC    string `json:"rfc"`
	Role   string `json:"role"` // "cliente" | "empleado"
}

// Claims claims estándar más la identidad del usuario.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

// Generate firma un token HS256 para id con vigencia ttl.
func Generate(secret string, id Identity, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Identity: id,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida firma y vigencia. Cualquier fallo se reporta como ErrInvalidToken.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, errors.New("jwt: secret vacío")
	}
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

// ParseBearer extrae el token de un header "Bearer <token>" y lo valida.
func ParseBearer(secret, header string) (*Claims, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, ErrMissingToken
	}
	scheme, token, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, "Bearer") {
		return nil, fmt.Errorf("%w: formato esperado Bearer <token>", ErrInvalidToken)
	}
	if token = strings.TrimSpace(token); token == "" {
		return nil, ErrMissingToken
	}
	return Parse(secret, token)
}
