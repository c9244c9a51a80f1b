package dto

// DashboardSummaryDTO respuesta de GET /api/dashboard.
// Los contadores animados viajan aparte por GET /api/dashboard/stream.
type DashboardSummaryDTO struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Badge    string `json:"badge"`

	Metrics          DashboardMetricsDTO      `json:"metrics"`
	QuickStats       []QuickStatDTO           `json:"quick_stats"`
	TopCategories    []CategoryPerformanceDTO `json:"top_categories"`
	RecentActivities []ActivityDTO            `json:"recent_activities"`
}

// DashboardMetricsDTO objetivos fijos de los contadores.
type DashboardMetricsDTO struct {
	TotalProducts int64  `json:"total_products"`
	TotalValue    string `json:"total_value"`
	LowStock      int64  `json:"low_stock"`
	Categories    int    `json:"categories"`
	Growth        string `json:"growth"`
	ActiveUsers   int64  `json:"active_users"`
}

// QuickStatDTO tarjeta de indicador.
type QuickStatDTO struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Trend       string `json:"trend"`
	TrendUp     bool   `json:"trend_up"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// CategoryPerformanceDTO fila de "Top Performing Categories".
type CategoryPerformanceDTO struct {
	Name   string `json:"name"`
	Value  int    `json:"value"`  // 0-100, ancho de la barra
	Growth string `json:"growth"` // con signo, ej: "+12.3%"
	Up     bool   `json:"up"`
}

// ActivityDTO fila de "Live Activity".
type ActivityDTO struct {
	Action string `json:"action"`
	Item   string `json:"item"`
	Time   string `json:"time"`
	Type   string `json:"type"` // success, warning, info
}

// CounterFrameDTO un evento del stream de animación.
type CounterFrameDTO struct {
	Step          int            `json:"step"`
	Steps         int            `json:"steps"`
	TotalProducts int64          `json:"total_products"`
	TotalValue    int64          `json:"total_value"`
	LowStock      int64          `json:"low_stock"`
	ActiveUsers   int64          `json:"active_users"`
	QuickStats    []QuickStatDTO `json:"quick_stats"`
	Done          bool           `json:"done"`
}
