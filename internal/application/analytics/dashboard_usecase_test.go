package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodity-flow/internal/application/analytics"
	"github.com/jhoicas/commodity-flow/internal/application/dto"
)

func TestEaseOut_Extremos(t *testing.T) {
	assert.Equal(t, 0.0, analytics.EaseOut(0))
	assert.Equal(t, 1.0, analytics.EaseOut(1))
	assert.Equal(t, 0.875, analytics.EaseOut(0.5))
	assert.Equal(t, 1.0, analytics.EaseOut(1.5), "se acota a 1")
}

func TestFrame_MitadYFinal(t *testing.T) {
	m := analytics.DefaultMetrics()

	half := analytics.Frame(m, 30, 60)
	assert.Equal(t, analytics.Counters{TotalProducts: 1091, TotalValue: 2176562, LowStock: 20, ActiveUsers: 136}, half)

	last := analytics.Frame(m, 60, 60)
	assert.Equal(t, analytics.Counters{TotalProducts: 1247, TotalValue: 2487500, LowStock: 23, ActiveUsers: 156}, last)

	assert.Equal(t, analytics.Counters{}, analytics.Frame(m, 0, 60))
}

func TestFrame_Monotono(t *testing.T) {
	m := analytics.DefaultMetrics()
	prev := analytics.Frame(m, 0, 60)
	for step := 1; step <= 60; step++ {
		cur := analytics.Frame(m, step, 60)
		assert.GreaterOrEqual(t, cur.TotalValue, prev.TotalValue)
		assert.GreaterOrEqual(t, cur.TotalProducts, prev.TotalProducts)
		prev = cur
	}
}

func TestQuickStats_Etiquetas(t *testing.T) {
	stats := analytics.QuickStats(analytics.Frame(analytics.DefaultMetrics(), 60, 60))
	require.Len(t, stats, 4)
	assert.Equal(t, "1,247", stats[0].Value)
	assert.Equal(t, "$2488K", stats[1].Value)
	assert.Equal(t, "23", stats[2].Value)
	assert.False(t, stats[2].TrendUp)
	assert.Equal(t, "156", stats[3].Value)

	zero := analytics.QuickStats(analytics.Counters{})
	assert.Equal(t, "0", zero[0].Value)
	assert.Equal(t, "$0K", zero[1].Value)
}

func TestTopCategories_SignoDelCrecimiento(t *testing.T) {
	rows := analytics.TopCategories()
	require.Len(t, rows, 5)
	assert.Equal(t, "+12.3%", rows[0].Growth)
	assert.True(t, rows[0].Up)
	assert.Equal(t, "Metals", rows[2].Name)
	assert.Equal(t, "-2.1%", rows[2].Growth)
	assert.False(t, rows[2].Up)
}

func TestGetSummary(t *testing.T) {
	uc := analytics.NewDashboardUseCase(analytics.DefaultMetrics(), 0, 0)
	s := uc.GetSummary()
	assert.Equal(t, "Management Dashboard", s.Title)
	assert.Equal(t, "2487500", s.Metrics.TotalValue)
	assert.Equal(t, "12.5", s.Metrics.Growth)
	assert.Len(t, s.RecentActivities, 5)
	assert.Equal(t, 60, uc.Steps())
}

func TestAnimate_EmiteTodosLosPasos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(analytics.DefaultMetrics(), 20*time.Millisecond, 10)
	var frames []dto.CounterFrameDTO
	err := uc.Animate(context.Background(), func(f dto.CounterFrameDTO) error {
		frames = append(frames, f)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, frames, 10)
	assert.True(t, frames[9].Done)
	assert.Equal(t, int64(1247), frames[9].TotalProducts)
	assert.False(t, frames[0].Done)
}

func TestAnimate_MasPasosQueNanosegundos(t *testing.T) {
	uc := analytics.NewDashboardUseCase(analytics.DefaultMetrics(), time.Nanosecond, 8)
	var frames []dto.CounterFrameDTO
	require.NotPanics(t, func() {
		err := uc.Animate(context.Background(), func(f dto.CounterFrameDTO) error {
			frames = append(frames, f)
			return nil
		})
		require.NoError(t, err)
	})
	require.Len(t, frames, 8)
	assert.True(t, frames[7].Done)
}

func TestAnimate_CancelacionDetieneElTicker(t *testing.T) {
	uc := analytics.NewDashboardUseCase(analytics.DefaultMetrics(), time.Hour, 60)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := uc.Animate(ctx, func(dto.CounterFrameDTO) error { calls++; return nil })
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, calls)
}

func TestAnimate_ErrorDeEmision(t *testing.T) {
	uc := analytics.NewDashboardUseCase(analytics.DefaultMetrics(), 10*time.Millisecond, 5)
	boom := errors.New("cliente desconectado")
	calls := 0
	err := uc.Animate(context.Background(), func(dto.CounterFrameDTO) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
