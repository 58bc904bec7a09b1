package entity

import "time"

// Roles válidos para User.
const (
	RoleCliente  = "cliente"
	RoleEmpleado = "empleado"
)

// User representa una cuenta registrada. El RFC identifica al receptor de las facturas.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	RFC          string
	Address      string // partes del domicilio unidas con ", "
	IsEmployee   bool
	CreatedAt    time.Time
}

// Role devuelve el rol que viaja en el JWT.
func (u *User) Role() string {
	if u.IsEmployee {
		return RoleEmpleado
	}
	return RoleCliente
}
