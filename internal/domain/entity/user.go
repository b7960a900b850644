package entity

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleFuncionario = "funcionario"
)

// User representa un operador del sistema.
type User struct {
	ID           int64
	Name         string
	Login        string // único
	PasswordHash string // bcrypt, nunca plano después de persistir
	Role         string // admin, funcionario
}

// ValidRole indica si role es uno de los roles soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleFuncionario
}

// IsAdmin atajo para el gating de menús.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
