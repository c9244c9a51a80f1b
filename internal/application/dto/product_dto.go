package dto

// ProductListQuery criterios de la vista de productos (query string).
type ProductListQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Status   string `query:"status"`
	Sort     string `query:"sort"`
	View     string `query:"view"`
}

// ProductResponse tarjeta/fila de un producto con sus etiquetas de presentación.
type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Supplier     string `json:"supplier"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price"`
	Status       string `json:"status"`
	Trend        string `json:"trend"`
	Rating       string `json:"rating"`
	LastUpdated  string `json:"last_updated"`
	QuantityText string `json:"quantity_label"` // "2,500"
	PriceText    string `json:"price_label"`    // "$450.00"
	StatusText   string `json:"status_label"`   // "in stock"
	UpdatedText  string `json:"updated_label"`  // "Updated 2 hours ago"
}

// StatusCountsDTO contadores de la cabecera sobre el catálogo completo.
type StatusCountsDTO struct {
	InStock    int `json:"in_stock"`
	LowStock   int `json:"low_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// OptionDTO opción de un selector.
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EmptyStateDTO marcador cuando ningún producto pasa los filtros.
type EmptyStateDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Title        string            `json:"title"`
	CountLabel   string            `json:"count_label"` // "6 of 6 products"
	Shown        int               `json:"shown"`
	Total        int               `json:"total"`
	StatusCounts StatusCountsDTO   `json:"status_counts"`
	Query        ProductListQuery  `json:"criteria"`
	Categories   []string          `json:"categories"`
	Statuses     []OptionDTO       `json:"statuses"`
	SortOptions  []OptionDTO       `json:"sort_options"`
	Products     []ProductResponse `json:"products"`
	Empty        *EmptyStateDTO    `json:"empty,omitempty"`
}
