package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/jhoicas/commodity-flow/docs"
	appanalytics "github.com/jhoicas/commodity-flow/internal/application/analytics"
	"github.com/jhoicas/commodity-flow/internal/application/auth"
	"github.com/jhoicas/commodity-flow/internal/application/inventory"
	"github.com/jhoicas/commodity-flow/internal/application/profile"
	"github.com/jhoicas/commodity-flow/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/commodity-flow/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/commodity-flow/internal/interfaces/http"
	"github.com/jhoicas/commodity-flow/pkg/config"
	"github.com/jhoicas/commodity-flow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closeStorage, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("almacenamiento de perfiles")
	}
	defer closeStorage()

	password, err := auth.NewSharedPassword(cfg.Auth.SharedPassword, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("contraseña compartida")
	}

	userRepo := memory.NewUserRepository(memory.SeedUsers())
	productRepo := memory.NewProductRepository(memory.SeedProducts())

	profiles := profile.NewRegistry(profile.Deps{
		Users:       userRepo,
		Password:    password,
		Storage:     kv,
		SubmitDelay: cfg.AddProduct.SubmitDelay,
		Log:         log.Zerolog(),
	})

	// Barrido periódico de perfiles inactivos
	sched := cron.New()
	idle := time.Duration(cfg.Profile.IdleMinutes) * time.Minute
	if err := profiles.Schedule(sched, cfg.Profile.SweepSpec, idle); err != nil {
		log.Fatal().Err(err).Msg("planificador")
	}
	sched.Start()

	dashboardUC := appanalytics.NewDashboardUseCase(
		appanalytics.DefaultMetrics(), cfg.Dashboard.AnimationDuration, cfg.Dashboard.AnimationSteps,
	)
	catalogUC := inventory.NewCatalogUseCase(productRepo)
	exportUC := inventory.NewExportUseCase(catalogUC, infrapdf.NewMarotoPDFGenerator())

	// Sin WriteTimeout: el stream SSE del dashboard dura lo que la animación.
	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		IdleTimeout: time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CommodityFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "profiles": profiles.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Profiles: profiles,
		Cookie: httpRouter.CookieConfig{
			Name:       cfg.Profile.CookieName,
			Secret:     cfg.Profile.Secret,
			Issuer:     cfg.Profile.Issuer,
			TTLMinutes: cfg.Profile.TTLMinutes,
			Secure:     cfg.App.Env == "production",
		},
		DashboardUC:  dashboardUC,
		CatalogUC:    catalogUC,
		ExportUC:     exportUC,
		DemoPassword: cfg.Auth.SharedPassword,
		Log:          log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	<-sched.Stop().Done()

	log.Info().Msg("aplicación detenida")
}
