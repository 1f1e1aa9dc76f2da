package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/SalesExec-api/internal/application/auth"
	"github.com/jhoicas/SalesExec-api/internal/application/ports"
	"github.com/jhoicas/SalesExec-api/internal/application/usecase"
	"github.com/jhoicas/SalesExec-api/internal/infrastructure/cache"
	"github.com/jhoicas/SalesExec-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/SalesExec-api/internal/interfaces/http"
	"github.com/jhoicas/SalesExec-api/pkg/config"
	"github.com/jhoicas/SalesExec-api/pkg/logger"
)

const metricsNamespace = "salesexec"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
		Debug: cfg.App.Debug,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	loc, _ := cfg.App.Location()

	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", loc.String()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := postgres.NewDB(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer db.Close()

	if cfg.DB.AutoMigrate {
		applied, err := db.Migrate(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	}

	// Cache opcional: sin REDIS_ADDR los casos de uso leen siempre de la base.
	var appCache ports.Cache = ports.NopCache{}
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, se sigue sin cache")
		} else {
			defer rdb.Close()
			appCache = cache.NewRedisCache(rdb, cfg.App.Name+":")
		}
	}

	executiveRepo := postgres.NewExecutiveRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	performanceRepo := postgres.NewPerformanceRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	attentionRepo := postgres.NewAttentionRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)
	eventRepo := postgres.NewEventRepository(db)

	hasher, err := auth.NewPasswordHasher(cfg.Auth.HashScheme, cfg.Auth.LegacySalt)
	if err != nil {
		log.Fatal().Err(err).Msg("hasher de contraseñas")
	}
	authUC := auth.NewAuthUseCase(executiveRepo, accountRepo, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	incentiveUC := usecase.NewIncentiveUseCase(executiveRepo, performanceRepo, loc)
	leaderboardUC := usecase.NewLeaderboardUseCase(leaderboardRepo, appCache, cfg.Redis.TTL)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	attentionUC := usecase.NewAttentionUseCase(attentionRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, appCache, cfg.Redis.TTL, loc)
	eventUC := usecase.NewEventUseCase(eventRepo, loc)

	// Prometheus: registry propio con runtime, proceso y estado del pool.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "db_pool_acquired_conns",
			Help:      "Connections currently acquired from the PostgreSQL pool",
		}, func() float64 { return float64(db.Stat().AcquiredConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "db_pool_total_conns",
			Help:      "Total connections in the PostgreSQL pool",
		}, func() float64 { return float64(db.Stat().TotalConns()) }),
	)
	metrics := httpRouter.NewMetrics(metricsNamespace, registry)

	app := httpRouter.NewApp(httpRouter.AppConfig{Name: cfg.App.Name, Debug: cfg.App.Debug}, log.Zerolog())
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(cfg.HTTP.CORSOrigins, " ", ""),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log.Zerolog()))
	app.Use(metrics.Middleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sales Executive API",
	}))

	err = httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		IncentiveUC:    incentiveUC,
		LeaderboardUC:  leaderboardUC,
		CustomerUC:     customerUC,
		AttentionUC:    attentionUC,
		NotificationUC: notificationUC,
		EventUC:        eventUC,
		DB:             db,
		Metrics:        metrics,
		JWTSecret:      cfg.JWT.Secret,
		AuthRateLimit:  cfg.Auth.RateLimit,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("registrar rutas")
	}

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
