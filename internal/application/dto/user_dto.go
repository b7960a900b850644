package dto

// RegisterUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Login    string `json:"login" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=admin funcionario"`
}

// ChangePasswordRequest cambio de contraseña.
type ChangePasswordRequest struct {
	Password string `json:"password" validate:"required,min=4"`
}

// UserResponse salida de un usuario (sin hash).
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Role  string `json:"role"`
}

// LoginRequest login + contraseña.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT, usuario y menús visibles para su rol.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	Menus []string     `json:"menus"`
}
