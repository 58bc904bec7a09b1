package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// Nombres de los constraints únicos de usuarios (ver migración 000001).
const (
	constraintUserEmail = "usuarios_correo_electronico_key"
	constraintUserRFC   = "usuarios_rfc_receptor_key"
)

const userColumns = `id, nombre_usuario, contrasena_hash, correo_electronico, rfc_receptor, domicilio, es_empleado, created_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Los constraints únicos deciden las carreras
// entre registros simultáneos con el mismo correo o RFC.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `
		INSERT INTO usuarios (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.PasswordHash, user.Email, user.RFC, user.Address, user.IsEmployee, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			switch constraintName(err) {
			case constraintUserRFC:
				return domain.ErrRFCAlreadyExists
			default:
				return domain.ErrEmailAlreadyExists
			}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, "id", id)
}

// GetByEmail obtiene un usuario por correo electrónico.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "correo_electronico", email)
}

// GetByRFC obtiene un usuario por RFC de receptor.
func (r *UserRepo) GetByRFC(ctx context.Context, rfc string) (*entity.User, error) {
	return r.getOne(ctx, "rfc_receptor", rfc)
}

// getOne recibe column solo desde constantes de este archivo.
func (r *UserRepo) getOne(ctx context.Context, column, value string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM usuarios WHERE ` + column + ` = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, value).Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.Email, &u.RFC, &u.Address, &u.IsEmployee, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by %s: %w", column, err)
	}
	return &u, nil
}
