package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/in/ws"
	"pizzeria/internal/adapters/out/kv"
	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/adapters/out/postgres/kvstore"
	"pizzeria/internal/adapters/out/postgres/productrepo"
	redisout "pizzeria/internal/adapters/out/redis"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/jobs"
	"pizzeria/internal/pkg/auth"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Everything hangs
// off the config and the database handle; the stage store backing is chosen
// by Config.StoreBackend.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger

	carts ports.CartRegistry
	store ports.StageStore
	repo  ports.ProductRepository
	hub   *ws.Hub
	users *auth.UserStore
}

// NewCompositionRoot builds the object graph. It fails if the configured
// stage store backend is unknown or unreachable.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	backing, err := newKeyValueStore(ctx, config, gormDB)
	if err != nil {
		return nil, err
	}

	users, err := auth.NewUserStore([]auth.RosterEntry{
		{Username: "cozinha", Password: config.KitchenPassword, Role: auth.RoleKitchen},
		{Username: "entrega", Password: config.DeliveryPassword, Role: auth.RoleDelivery},
		{Username: "admin", Password: config.AdminPassword, Role: auth.RoleAdmin},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build staff roster: %w", err)
	}

	return &CompositionRoot{
		config: config,
		gormDB: gormDB,
		logger: logger,
		carts:  memory.NewCartRegistry(),
		store:  kv.NewStageStore(backing),
		repo:   productrepo.NewGormProductRepository(gormDB),
		hub:    ws.NewHub(logger),
		users:  users,
	}, nil
}

func newKeyValueStore(ctx context.Context, config Config, gormDB *gorm.DB) (ports.KeyValueStore, error) {
	switch config.StoreBackend {
	case "postgres", "":
		return kvstore.NewGormKeyValueStore(gormDB), nil
	case "redis":
		client, err := redisout.Connect(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return redisout.NewKeyValueStore(client), nil
	case "memory":
		return memory.NewKeyValueStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.StoreBackend)
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.carts, c.repo)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateUpdateCartItemQuantityCommandHandler() commands.UpdateCartItemQuantityCommandHandler {
	return commands.NewUpdateCartItemQuantityCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.carts, c.store, services.NewPaymentValidator())
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts)
}

func (c *CompositionRoot) CreateGetStageOrdersQueryHandler() queries.GetStageOrdersQueryHandler {
	return queries.NewGetStageOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateAddCartItemCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateUpdateCartItemQuantityCommandHandler(),
		c.CreateClearCartCommandHandler(),
		c.CreateSubmitOrderCommandHandler(),
		c.CreateMarkOrderReadyCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateGetCatalogQueryHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateGetStageOrdersQueryHandler(),
		c.users,
		c.config.JWTSecret,
		c.hub,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.hub, c.config.StaleOrderThreshold, c.logger)
}
