package entity

import "time"

// Roles válidos para User. El registro público siempre crea "customer";
// "owner" y "superAdmin" se asignan por un administrador.
const (
	RoleCustomer   = "customer"
	RoleOwner      = "owner"
	RoleSuperAdmin = "superAdmin"
)

// ValidRole indica si el rol pertenece al conjunto cerrado de roles.
func ValidRole(role string) bool {
	return role == RoleCustomer || role == RoleOwner || role == RoleSuperAdmin
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // customer, owner, superAdmin
	FirstName    string
	LastName     string
	Phone        string
	AddressID    string // referencia opcional a Address ("" = sin dirección)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
