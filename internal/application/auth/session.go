package auth

import "github.com/jhoicas/sys360/internal/domain/entity"

// Session identidad del operador autenticado. Se pasa explícitamente a los casos de uso.
type Session struct {
	UserID int64
	Name   string
	Login  string
	Role   string
}

// IsAdmin informa si la sesión tiene rol admin.
func (s Session) IsAdmin() bool { return s.Role == entity.RoleAdmin }

// Menús de la aplicación.
const (
	MenuDashboard = "dashboard"
	MenuSales     = "vendas"
	MenuProducts  = "produtos"
	MenuClients   = "clientes"
	MenuLedger    = "financeiro"
	MenuFleet     = "frota"
	MenuHistory   = "historico"
	MenuUsers     = "usuarios"
	MenuSettings  = "configuracoes"
)

var commonMenus = []string{MenuDashboard, MenuSales, MenuProducts, MenuClients, MenuLedger, MenuFleet, MenuHistory}

// MenusForRole devuelve las claves de menú visibles para el rol.
// Gestión de usuarios y configuraciones solo para admin; rol desconocido no ve nada.
func MenusForRole(role string) []string {
	switch role {
	case entity.RoleAdmin:
		out := make([]string, 0, len(commonMenus)+2)
		out = append(out, commonMenus...)
		return append(out, MenuUsers, MenuSettings)
	case entity.RoleFuncionario:
		return append([]string(nil), commonMenus...)
	default:
		return nil
	}
}

// CanAccess informa si el rol ve el menú.
func CanAccess(role, menu string) bool {
	for _, m := range MenusForRole(role) {
		if m == menu {
			return true
		}
	}
	return false
}
