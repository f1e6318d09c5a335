package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	"github.com/rutujaMandapmalvi3/Laika/internal/application/profile"
	"github.com/rutujaMandapmalvi3/Laika/internal/domain/repository"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/awscfg"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/dynamo"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/memory"
	"github.com/rutujaMandapmalvi3/Laika/internal/infrastructure/postgres"
	httpRouter "github.com/rutujaMandapmalvi3/Laika/internal/interfaces/http"
	"github.com/rutujaMandapmalvi3/Laika/pkg/config"
	"github.com/rutujaMandapmalvi3/Laika/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	// Tarifas, rating y peso viajan como números JSON, igual que la API de producción.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	store, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	profileSvc := profile.NewService(store, log)

	verifier, err := newVerifier(cfg.JWT, log)
	if err != nil {
		log.Fatal().Err(err).Msg("verificación de tokens")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpRouter.NewMetrics(reg)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.HTTP.DocsPath != "" {
		if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.HTTP.DocsPath,
				Path:     "docs",
				Title:    "Laika API",
			}))
		} else {
			log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Profiles: profileSvc,
		Verifier: verifier,
		Metrics:  metrics,
		Gatherer: reg,
		Log:      log,
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

	log.Info().Msg("aplicación detenida")
}

// newVerifier elige la verificación del bearer token según JWT_MODE.
func newVerifier(cfg config.JWTConfig, log *logger.Logger) (httpRouter.TokenVerifier, error) {
	if cfg.Mode == config.JWTModeGateway {
		log.Warn().Msg("JWT_MODE=gateway: la firma de los tokens no se verifica aquí; exponer solo detrás del authorizer JWT del API Gateway")
		return httpRouter.GatewayVerifier(time.Now), nil
	}
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET requerido con JWT_MODE=hmac")
	}
	return httpRouter.HMACVerifier(cfg.Secret), nil
}

// openStore construye el ProfileStore según STORE_BACKEND. El cierre devuelto libera
// conexiones (pool de PostgreSQL); para los demás backends no hace nada.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.ProfileStore, func()) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
		return postgres.NewProfileStore(pool), pool.Close
	case config.BackendMemory:
		log.Warn().Msg("store en memoria: los datos se pierden al reiniciar")
		return memory.NewProfileStore(nil), func() {}
	default:
		awsCfg, err := awscfg.Load(ctx, cfg.AWS)
		if err != nil {
			log.Fatal().Err(err).Msg("configuración de AWS")
		}
		client := dynamo.NewClient(awsCfg, cfg.AWS.Endpoint)
		return dynamo.NewProfileStore(client, cfg.Tables, log, nil), func() {}
	}
}
