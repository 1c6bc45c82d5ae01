package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// ValidRole indica si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStaff
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
