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

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/application/notify"
	"github.com/jhoicas/almacen-api/internal/application/registry"
	"github.com/jhoicas/almacen-api/internal/application/request"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/internal/infrastructure/redisbus"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// repos agrupa los adaptadores de persistencia para que el cableado no
// dependa del driver elegido.
type repos struct {
	items         repository.ItemRepository
	categories    repository.CategoryRepository
	departments   repository.DepartmentRepository
	locations     repository.LocationRepository
	users         repository.UserRepository
	balances      repository.BalanceRepository
	movements     repository.MovementRepository
	procurements  repository.ProcurementRepository
	discards      repository.DiscardRepository
	requests      repository.StockRequestRepository
	audit         repository.AuditRepository
	notifications repository.NotificationRepository
	txRunner      ledger.TxRunner
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var r repos
	switch cfg.DB.Driver {
	case "memory":
		store := memory.NewStore()
		r = repos{
			items:         store.Items(),
			categories:    store.Categories(),
			departments:   store.Departments(),
			locations:     store.Locations(),
			users:         store.Users(),
			balances:      store.Balances(),
			movements:     store.Movements(),
			procurements:  store.Procurements(),
			discards:      store.Discards(),
			requests:      store.Requests(),
			audit:         store.Audit(),
			notifications: store.Notifications(),
			txRunner:      store.TxRunner(),
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		r = repos{
			items:         postgres.NewItemRepository(pool),
			categories:    postgres.NewCategoryRepository(pool),
			departments:   postgres.NewDepartmentRepository(pool),
			locations:     postgres.NewLocationRepository(pool),
			users:         postgres.NewUserRepository(pool),
			balances:      postgres.NewBalanceRepository(pool),
			movements:     postgres.NewMovementRepository(pool),
			procurements:  postgres.NewProcurementRepository(pool),
			discards:      postgres.NewDiscardRepository(pool),
			requests:      postgres.NewStockRequestRepository(pool),
			audit:         postgres.NewAuditRepository(pool),
			notifications: postgres.NewNotificationRepository(pool),
			txRunner:      postgres.NewTxRunner(pool),
		}
	}

	recorder := audit.NewRecorder(r.audit, log)
	recorder.Subscribe(notify.NewDispatcher(r.users, r.notifications, log))

	// Publicador Redis opcional: solo si hay dirección configurada.
	if cfg.Redis.Addr != "" {
		pub, err := redisbus.NewPublisher(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Channel, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer pub.Close()
		recorder.Subscribe(pub)
		log.Info().Str("channel", cfg.Redis.Channel).Msg("publicador de bitácora en Redis activo")
	}

	reg := registry.NewRegistry(r.items, r.categories, r.departments, r.locations, r.users, r.balances, recorder)
	movementEngine := ledger.NewMovementEngine(r.txRunner, r.items, r.locations, recorder)
	procurementLedger := ledger.NewProcurementLedger(r.txRunner, r.items, r.locations, recorder)
	discardLedger := ledger.NewDiscardLedger(r.txRunner, r.items, r.locations, r.procurements, r.balances, recorder)
	workflow := request.NewWorkflow(r.txRunner, movementEngine, r.items, r.locations, r.requests, recorder)
	dashboardUC := analytics.NewDashboardUseCase(r.items, r.requests, r.movements, r.balances)
	authUC := auth.NewAuthUseCase(r.users, r.departments, recorder, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Registry:      reg,
		Procurement:   procurementLedger,
		Movement:      movementEngine,
		Discard:       discardLedger,
		Requests:      workflow,
		Dashboard:     dashboardUC,
		Recorder:      recorder,
		Balances:      r.balances,
		Movements:     r.movements,
		Procurements:  r.procurements,
		Discards:      r.discards,
		Notifications: r.notifications,
		JWTSecret:     cfg.JWT.Secret,
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
