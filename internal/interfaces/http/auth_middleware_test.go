package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodity-flow/internal/application/dto"
	pkgjwt "github.com/jhoicas/commodity-flow/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProfileMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: primera visita → se emite cookie firmada con un id de perfil.
func TestProfileMiddleware_EmiteCookie(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)

	resp := c.do(http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, c.cookie, "debe emitirse la cookie de perfil")
	assert.True(t, c.cookie.HttpOnly)

	id, err := pkgjwt.Parse(testSecret, c.cookie.Value)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 1, env.profiles.Len())

	s := decode[dto.SessionResponse](t, resp)
	assert.False(t, s.Authenticated)
	assert.Nil(t, s.User)
}

// Caso 2: con cookie válida se reutiliza el mismo perfil y no se reemite.
func TestProfileMiddleware_ReutilizaPerfil(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	c.do(http.MethodGet, "/api/session", nil)
	first := c.cookie.Value

	resp := c.do(http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Cookies())
	assert.Equal(t, first, c.cookie.Value)
	assert.Equal(t, 1, env.profiles.Len())
}

// Caso 3: cookie firmada con otro secreto → perfil nuevo.
func TestProfileMiddleware_CookieFalsificada(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	forged, err := pkgjwt.Generate("otro-secreto", "victima", "x", 60)
	require.NoError(t, err)
	c.cookie = &http.Cookie{Name: testCookieName, Value: forged}

	resp := c.do(http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	id, err := pkgjwt.Parse(testSecret, c.cookie.Value)
	require.NoError(t, err)
	assert.NotEqual(t, "victima", id)
}

// Caso 4: la pista de esquema de color alimenta el tema auto.
func TestProfileMiddleware_PistaDeEsquema(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	c.header["Sec-CH-Prefers-Color-Scheme"] = "dark"

	resp := c.do(http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Sec-CH-Prefers-Color-Scheme", resp.Header.Get("Accept-CH"))

	th := decode[dto.ThemeResponse](t, resp)
	assert.Equal(t, "auto", th.Preference)
	assert.Equal(t, "dark", th.Resolved)
	assert.True(t, th.Dark)

	// El sistema cambia a claro: el tema auto se re-resuelve.
	c.header["Sec-CH-Prefers-Color-Scheme"] = "light"
	th = decode[dto.ThemeResponse](t, c.do(http.MethodGet, "/api/theme", nil))
	assert.Equal(t, "light", th.Resolved)
	assert.False(t, th.Dark)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSession / RequireTab
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSession_SinSesion401(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	for _, path := range []string{"/api/products", "/api/dashboard", "/api/add-product/form", "/api/view/content"} {
		resp := c.do(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestRequireTab_BodegueroNoAccedeAlDashboard(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	c.login("keeper@commodity.com")

	resp := c.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Access Denied", body.Message)

	resp = c.do(http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireTab_GerenteAccedeAlDashboard(t *testing.T) {
	env := newTestEnv(t)
	c := env.client(t)
	c.login("manager@commodity.com")

	resp := c.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, "Management Dashboard", summary.Title)
	assert.Equal(t, "$2488K", summary.QuickStats[1].Value)
}
