package dto

// ThemeRequest entrada de PUT /api/theme.
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse preferencia, tema resuelto y estado del documento.
type ThemeResponse struct {
	Preference string `json:"preference"` // light, dark, auto
	Resolved   string `json:"resolved"`   // light, dark
	Dark       bool   `json:"dark"`       // clase "dark" en el documento
	SystemDark bool   `json:"system_dark"`
}

// NavItemDTO entrada de la navegación.
type NavItemDTO struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// HeaderDTO cabecera del shell.
type HeaderDTO struct {
	Brand       string        `json:"brand"`
	PortalTitle string        `json:"portal_title"`
	RoleLabel   string        `json:"role_label"` // "Manager", "Storekeeper"
	User        UserResponse  `json:"user"`
	Theme       ThemeResponse `json:"theme"`
}

// ViewResponse respuesta de GET /api/view.
type ViewResponse struct {
	State      string       `json:"state"` // logged_out, logged_in
	Header     *HeaderDTO   `json:"header,omitempty"`
	Navigation []NavItemDTO `json:"navigation,omitempty"`
	ActiveTab  string       `json:"active_tab,omitempty"`
}

// SelectTabRequest entrada de PUT /api/view/tab.
type SelectTabRequest struct {
	Tab string `json:"tab"`
}

// ContentResponse contenido de la pestaña activa. Solo uno de los cuerpos viene relleno.
type ContentResponse struct {
	Tab        string                  `json:"tab"`
	Kind       string                  `json:"kind"` // dashboard, products, add-product, denied
	Message    string                  `json:"message,omitempty"`
	Dashboard  *DashboardSummaryDTO    `json:"dashboard,omitempty"`
	Products   *ProductListResponse    `json:"products,omitempty"`
	AddProduct *AddProductFormResponse `json:"add_product,omitempty"`
}

// DemoAccountDTO cuenta de acceso rápido de la vista de login.
type DemoAccountDTO struct {
	Role        string `json:"role"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Description string `json:"description"`
}

// FeatureDTO bloque de características de la vista de login.
type FeatureDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StatDTO cifra destacada de la vista de login.
type StatDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LoginViewResponse respuesta de GET /api/login.
type LoginViewResponse struct {
	Brand        string           `json:"brand"`
	Tagline      string           `json:"tagline"`
	Pitch        string           `json:"pitch"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Features     []FeatureDTO     `json:"features"`
	Stats        []StatDTO        `json:"stats"`
	DemoAccounts []DemoAccountDTO `json:"demo_accounts"`
	Theme        ThemeResponse    `json:"theme"`
}
