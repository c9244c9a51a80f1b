package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/commodity-flow/internal/application/analytics"
	"github.com/jhoicas/commodity-flow/internal/application/inventory"
	"github.com/jhoicas/commodity-flow/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Profiles     profileLoader
	Cookie       CookieConfig
	DashboardUC  *appanalytics.DashboardUseCase
	CatalogUC    *inventory.CatalogUseCase
	ExportUC     *inventory.ExportUseCase
	DemoPassword string
	Log          zerolog.Logger
}

// Router registra las rutas de la API. Todas pasan por ProfileMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ProfileMiddleware(deps.Profiles, deps.Cookie, deps.Log))

	// Login y sesión (sin sesión requerida)
	authHandler := NewAuthHandler(deps.DemoPassword, deps.Log)
	api.Get("/login", authHandler.LoginView)
	api.Get("/session", authHandler.Session)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Tema (también en la vista de login)
	themeHandler := NewThemeHandler(deps.Log)
	api.Get("/theme", themeHandler.Get)
	api.Put("/theme", themeHandler.Set)
	api.Post("/theme/toggle", themeHandler.Toggle)

	// Enrutador de vistas: GET /view responde también sin sesión (logged_out)
	viewHandler := NewViewHandler(deps.DashboardUC, deps.CatalogUC, deps.Log)
	api.Get("/view", viewHandler.Get)
	view := api.Group("/view", RequireSession())
	view.Put("/tab", viewHandler.SelectTab)
	view.Get("/content", viewHandler.Content)

	// Dashboard (solo gerente)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	dashboard := api.Group("/dashboard", RequireSession(), RequireTab(entity.TabDashboard))
	dashboard.Get("/", dashboardHandler.GetSummary)
	dashboard.Get("/stream", dashboardHandler.Stream)

	// Products
	productHandler := NewProductHandler(deps.CatalogUC, deps.ExportUC, deps.Log)
	products := api.Group("/products", RequireSession(), RequireTab(entity.TabProducts))
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/export.pdf", productHandler.ExportPDF)
	products.Get("/:id", productHandler.GetByID)

	// Add product
	addHandler := NewAddProductHandler(deps.Log)
	add := api.Group("/add-product", RequireSession(), RequireTab(entity.TabAddProduct))
	add.Get("/form", addHandler.GetForm)
	add.Patch("/form", addHandler.PatchForm)
	add.Post("/reset", addHandler.Reset)
	add.Post("/submit", addHandler.Submit)
}
