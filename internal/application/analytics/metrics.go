package analytics

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
)

// Metrics objetivos fijos del dashboard.
type Metrics struct {
	TotalProducts int64
	TotalValue    int64
	LowStock      int64
	Categories    int
	Growth        decimal.Decimal
	ActiveUsers   int64
}

// DefaultMetrics valores mostrados por el dashboard.
func DefaultMetrics() Metrics {
	return Metrics{
		TotalProducts: 1247,
		TotalValue:    2487500,
		LowStock:      23,
		Categories:    12,
		Growth:        decimal.RequireFromString("12.5"),
		ActiveUsers:   156,
	}
}

// Counters valores animados en un paso dado.
type Counters struct {
	TotalProducts int64
	TotalValue    int64
	LowStock      int64
	ActiveUsers   int64
}

// EaseOut curva cúbica 1-(1-p)^3. p se acota a [0,1].
func EaseOut(p float64) float64 {
	p = math.Max(0, math.Min(1, p))
	return 1 - math.Pow(1-p, 3)
}

// Frame contadores en el paso step de steps. Frame(m, steps, steps) devuelve
// exactamente los objetivos.
func Frame(m Metrics, step, steps int) Counters {
	if steps <= 0 {
		steps = 1
	}
	e := EaseOut(float64(step) / float64(steps))
	at := func(target int64) int64 { return int64(math.Floor(float64(target) * e)) }
	return Counters{
		TotalProducts: at(m.TotalProducts),
		TotalValue:    at(m.TotalValue),
		LowStock:      at(m.LowStock),
		ActiveUsers:   at(m.ActiveUsers),
	}
}

// PortfolioLabel valor en miles con redondeo, ej: 2487500 -> "$2488K".
func PortfolioLabel(value int64) string {
	return "$" + decimal.NewFromInt(value).Div(decimal.NewFromInt(1000)).StringFixed(0) + "K"
}

// QuickStats tarjetas de indicadores para unos contadores.
func QuickStats(c Counters) []dto.QuickStatDTO {
	p := message.NewPrinter(language.English)
	return []dto.QuickStatDTO{
		{Title: "Total Products", Value: p.Sprintf("%d", c.TotalProducts), Trend: "+8.2%", TrendUp: true, Color: "blue", Description: "Active inventory items"},
		{Title: "Portfolio Value", Value: PortfolioLabel(c.TotalValue), Trend: "+12.5%", TrendUp: true, Color: "green", Description: "Total commodity value"},
		{Title: "Low Stock Items", Value: p.Sprintf("%d", c.LowStock), Trend: "-5.1%", TrendUp: false, Color: "red", Description: "Require restocking"},
		{Title: "Active Users", Value: p.Sprintf("%d", c.ActiveUsers), Trend: "+3.2%", TrendUp: true, Color: "purple", Description: "Store keepers online"},
	}
}

type categoryPerformance struct {
	name   string
	value  int
	growth string
}

var topCategories = []categoryPerformance{
	{"Agricultural", 85, "12.3"},
	{"Energy", 72, "8.7"},
	{"Metals", 65, "-2.1"},
	{"Livestock", 58, "15.4"},
	{"Textiles", 45, "6.8"},
}

// TopCategories filas fijas de rendimiento por categoría.
func TopCategories() []dto.CategoryPerformanceDTO {
	out := make([]dto.CategoryPerformanceDTO, 0, len(topCategories))
	for _, c := range topCategories {
		g := decimal.RequireFromString(c.growth)
		label := g.StringFixed(1) + "%"
		if g.IsPositive() {
			label = "+" + label
		}
		out = append(out, dto.CategoryPerformanceDTO{Name: c.name, Value: c.value, Growth: label, Up: !g.IsNegative()})
	}
	return out
}

// RecentActivities filas fijas de actividad.
func RecentActivities() []dto.ActivityDTO {
	return []dto.ActivityDTO{
		{Action: "New product added", Item: "Premium Wheat", Time: "2 min ago", Type: "success"},
		{Action: "Stock level critical", Item: "Crude Oil", Time: "5 min ago", Type: "warning"},
		{Action: "Large order processed", Item: "Gold Bars", Time: "12 min ago", Type: "info"},
		{Action: "Price updated", Item: "Silver Coins", Time: "18 min ago", Type: "success"},
		{Action: "User logged in", Item: "Sarah Keeper", Time: "25 min ago", Type: "info"},
	}
}
