package dto

// AddProductFields campos del formulario; todos texto, como llegan del navegador.
type AddProductFields struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
}

// AddProductFormResponse estado del borrador del formulario.
type AddProductFormResponse struct {
	Title       string           `json:"title"`
	Fields      AddProductFields `json:"fields"`
	Categories  []string         `json:"categories"`
	Submitting  bool             `json:"submitting"`
	SubmitLabel string           `json:"submit_label"`
}

// NotificationResponse aviso transitorio (toast).
type NotificationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ValidationErrorResponse error 400 con el detalle por campo.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
