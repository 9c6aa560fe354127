package dto

import "time"

// RegisterRequest entrada para registro público: solo email y password.
// El rol se fuerza a customer en el caso de uso, se ignore lo que venga.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUserResponse proyección mínima del usuario en respuestas de auth:
// nunca incluye password ni hash.
type AuthUserResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RegisterResponse salida de registro.
type RegisterResponse struct {
	User AuthUserResponse `json:"user"`
}

// LoginResponse salida de login con el token JWT.
type LoginResponse struct {
	User  AuthUserResponse `json:"user"`
	Token string           `json:"token"`
}

// UpdateUserRequest entrada para modificar un usuario. Campos con puntero:
// nil = no tocar, valor = sobrescribir (semántica de $set parcial del original).
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Address   *string `json:"address"`
}

// UserResponse salida de un usuario sin expandir (address como ID).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserExpandedResponse salida de un usuario con la dirección expandida (listado).
type UserExpandedResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	FirstName string           `json:"firstName,omitempty"`
	LastName  string           `json:"lastName,omitempty"`
	Phone     string           `json:"phone,omitempty"`
	Address   *AddressResponse `json:"address,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
