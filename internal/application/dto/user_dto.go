package dto

import "time"

// AddressRequest partes del domicilio; se guardan unidas con ", ".
type AddressRequest struct {
	Street         string `json:"calle" validate:"required"`
	ExteriorNumber string `json:"numero_exterior" validate:"required"`
	InteriorNumber string `json:"numero_interior,omitempty"`
	Neighborhood   string `json:"colonia" validate:"required"`
	Municipality   string `json:"municipio" validate:"required"`
	PostalCode     string `json:"codigo_postal" validate:"required,len=5,numeric"`
	State          string `json:"estado" validate:"required"`
	Country        string `json:"pais" validate:"required"`
}

// RegisterRequest entrada para registro de cuenta.
type RegisterRequest struct {
	Name       string         `json:"nombre" validate:"required"`
	Password   string         `json:"password" validate:"required,min=8"`
	Email      string         `json:"correo_electronico" validate:"required"`
	RFC        string         `json:"rfc" validate:"required"`
	Address    AddressRequest `json:"domicilio"`
	IsEmployee bool           `json:"es_empleado"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"nombre"`
	Email      string    `json:"correo_electronico"`
	RFC        string    `json:"rfc"`
	Address    string    `json:"domicilio"`
	IsEmployee bool      `json:"es_empleado"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"correo_electronico" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
