package entity

// Tab vista seleccionable dentro del shell autenticado.
type Tab string

const (
	TabDashboard  Tab = "dashboard"
	TabProducts   Tab = "products"
	TabAddProduct Tab = "add-product"
)

// ParseTab valida el identificador de pestaña.
func ParseTab(s string) (Tab, bool) {
	switch Tab(s) {
	case TabDashboard, TabProducts, TabAddProduct:
		return Tab(s), true
	}
	return "", false
}
