// Package analytics contiene el caso de uso del dashboard de gerencia:
// resumen estático y animación de contadores.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
)

// DashboardUseCase genera el resumen del dashboard y anima sus contadores.
type DashboardUseCase struct {
	metrics  Metrics
	duration time.Duration
	steps    int
}

// NewDashboardUseCase construye el caso de uso. duration y steps controlan la
// animación (2000 ms y 60 pasos por defecto).
func NewDashboardUseCase(metrics Metrics, duration time.Duration, steps int) *DashboardUseCase {
	if steps <= 0 {
		steps = 60
	}
	if duration <= 0 {
		duration = 2 * time.Second
	}
	return &DashboardUseCase{metrics: metrics, duration: duration, steps: steps}
}

// Steps número de pasos de la animación.
func (uc *DashboardUseCase) Steps() int { return uc.steps }

// GetSummary resumen con las tarjetas en su valor final.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	m := uc.metrics
	return &dto.DashboardSummaryDTO{
		Title:    "Management Dashboard",
		Subtitle: "Real-time insights into your commodity operations",
		Badge:    "Live Data",
		Metrics: dto.DashboardMetricsDTO{
			TotalProducts: m.TotalProducts,
			TotalValue:    fmt.Sprintf("%d", m.TotalValue),
			LowStock:      m.LowStock,
			Categories:    m.Categories,
			Growth:        m.Growth.StringFixed(1),
			ActiveUsers:   m.ActiveUsers,
		},
		QuickStats:       QuickStats(Frame(m, uc.steps, uc.steps)),
		TopCategories:    TopCategories(),
		RecentActivities: RecentActivities(),
	}
}

// interval separación entre frames; nunca menor a 1ns.
func (uc *DashboardUseCase) interval() time.Duration {
	if d := uc.duration / time.Duration(uc.steps); d > 0 {
		return d
	}
	return time.Nanosecond
}

// Animate emite un frame por paso, espaciados duration/steps, y termina tras el
// último. Se detiene con ctx (cliente desconectado) o si emit falla.
func (uc *DashboardUseCase) Animate(ctx context.Context, emit func(dto.CounterFrameDTO) error) error {
	ticker := time.NewTicker(uc.interval())
	defer ticker.Stop()

	for step := 1; step <= uc.steps; step++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		c := Frame(uc.metrics, step, uc.steps)
		frame := dto.CounterFrameDTO{
			Step:          step,
			Steps:         uc.steps,
			TotalProducts: c.TotalProducts,
			TotalValue:    c.TotalValue,
			LowStock:      c.LowStock,
			ActiveUsers:   c.ActiveUsers,
			QuickStats:    QuickStats(c),
			Done:          step == uc.steps,
		}
		if err := emit(frame); err != nil {
			return fmt.Errorf("analytics: emitir paso %d: %w", step, err)
		}
	}
	return nil
}
