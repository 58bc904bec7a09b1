package repository

import (
	"context"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Create devuelve ErrEmailAlreadyExists o ErrRFCAlreadyExists cuando la base
// rechaza el alta por unicidad, aunque la verificación previa haya pasado.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByRFC(ctx context.Context, rfc string) (*entity.User, error)
}
