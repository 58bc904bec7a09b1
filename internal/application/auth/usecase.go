package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/cfdi"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
	"github.com/miriamyi01/facturas-cfdi/pkg/jwt"
)

// MinPasswordLength longitud mínima de contraseña.
const MinPasswordLength = 8

// dummyHash se compara cuando el correo no existe para que el login tarde lo
// mismo en ambos casos de fallo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("cuenta-inexistente"), bcrypt.DefaultCost)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// RegisterUser valida los datos, verifica unicidad de correo y RFC, hashea el
// password con bcrypt y persiste. Si dos registros con el mismo correo corren
// a la vez, el constraint único de la base decide y el perdedor recibe el
// mismo ErrEmailAlreadyExists que daría la verificación previa.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	name := cfdi.Upper(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	rfc := cfdi.Upper(in.RFC)

	if err := cfdi.RequireFields(
		"nombre", name,
		"password", in.Password,
		"correo_electronico", email,
		"rfc", rfc,
		"calle", in.Address.Street,
		"numero_exterior", in.Address.ExteriorNumber,
		"colonia", in.Address.Neighborhood,
		"municipio", in.Address.Municipality,
		"codigo_postal", in.Address.PostalCode,
		"estado", in.Address.State,
		"pais", in.Address.Country,
	); err != nil {
		return nil, err
	}
	if err := cfdi.ValidateFullName(name); err != nil {
		return nil, err
	}
	if err := cfdi.ValidateRFC(rfc); err != nil {
		return nil, err
	}
	if err := cfdi.ValidateEmail(email); err != nil {
		return nil, err
	}
	if len(in.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: el password debe tener al menos %d caracteres", domain.ErrInvalidInput, MinPasswordLength)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, err := uc.userRepo.GetByRFC(ctx, rfc); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrRFCAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RFC:          rfc,
		Address:      formatAddress(in.Address),
		IsEmployee:   in.IsEmployee,
		CreatedAt:    uc.now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica correo/password y genera JWT. Correo desconocido y password
// incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret,
		jwt.Identity{UserID: user.ID, RFC: user.RFC, Role: user.Role()},
		uc.jwtCfg.Issuer, time.Duration(uc.jwtCfg.ExpMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me devuelve el usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return toUserResponse(user), nil
}

// formatAddress une las partes en mayúsculas con ", "; el número interior es opcional.
func formatAddress(a dto.AddressRequest) string {
	parts := []string{a.Street, a.ExteriorNumber, a.InteriorNumber, a.Neighborhood, a.Municipality, a.PostalCode, a.State, a.Country}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = cfdi.Upper(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		RFC:        u.RFC,
		Address:    u.Address,
		IsEmployee: u.IsEmployee,
		CreatedAt:  u.CreatedAt,
	}
}
