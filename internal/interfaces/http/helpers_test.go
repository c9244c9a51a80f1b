package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/commodity-flow/internal/application/analytics"
	"github.com/jhoicas/commodity-flow/internal/application/auth"
	"github.com/jhoicas/commodity-flow/internal/application/inventory"
	"github.com/jhoicas/commodity-flow/internal/application/profile"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/memory"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/commodity-flow/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret     = "test-secret-key-for-unit-tests"
	testCookieName = "cf_profile"
)

type testEnv struct {
	app      *fiber.App
	profiles *profile.Registry
	kv       *memory.KVStore
}

// newTestEnv construye la aplicación completa sobre almacenamiento en memoria.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	password, err := auth.NewSharedPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)

	kv := memory.NewKVStore()
	registry := profile.NewRegistry(profile.Deps{
		Users:       memory.NewUserRepository(memory.SeedUsers()),
		Password:    password,
		Storage:     kv,
		SubmitDelay: 10 * time.Millisecond,
		Log:         zerolog.Nop(),
	})
	catalog := inventory.NewCatalogUseCase(memory.NewProductRepository(memory.SeedProducts()))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Profiles: registry,
		Cookie: apphttp.CookieConfig{
			Name: testCookieName, Secret: testSecret, Issuer: "commodity-flow-test", TTLMinutes: 60,
		},
		DashboardUC:  analytics.NewDashboardUseCase(analytics.DefaultMetrics(), 50*time.Millisecond, 5),
		CatalogUC:    catalog,
		ExportUC:     inventory.NewExportUseCase(catalog, pdf.NewMarotoPDFGenerator()),
		DemoPassword: "password123",
		Log:          zerolog.Nop(),
	})
	return &testEnv{app: app, profiles: registry, kv: kv}
}

// client guarda la cookie de perfil entre peticiones, como un navegador.
type client struct {
	t      *testing.T
	env    *testEnv
	cookie *http.Cookie
	header map[string]string
}

func (e *testEnv) client(t *testing.T) *client {
	return &client{t: t, env: e, header: map[string]string{}}
}

func (c *client) do(method, path string, body any) *http.Response {
	c.t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.header {
		req.Header.Set(k, v)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	resp, err := c.env.app.Test(req, -1)
	require.NoError(c.t, err)
	for _, ck := range resp.Cookies() {
		if ck.Name == testCookieName {
			c.cookie = ck
		}
	}
	return resp
}

func (c *client) login(email string) {
	c.t.Helper()
	resp := c.do(http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": "password123"})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
