package cmd

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/jwtauth"
	"courier/internal/adapters/out/kafka"
	"courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/redis"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/ports"
	"courier/internal/jobs"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	cache      ports.TrackingCache
	tokens     ports.TokenService
	logger     *slog.Logger

	closers []func() error
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	if configs.KafkaHost != "" {
		producer, err := kafka.NewProducer(kafka.Config{
			Brokers:       strings.Split(configs.KafkaHost, ","),
			OrderTopic:    configs.KafkaOrderTopic,
			DeliveryTopic: configs.KafkaDeliveryTopic,
		})
		if err != nil {
			log.Fatalf("cannot connect to kafka: %v", err)
		}
		root.publisher = producer
		root.closers = append(root.closers, producer.Close)
	}

	if configs.RedisAddr != "" {
		cache, err := redis.NewTrackingCache(redis.Config{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
			DB:       mustInt("REDIS_DB", configs.RedisDB),
			TTL:      mustDuration("TRACKING_CACHE_TTL", configs.TrackingCacheTTL),
		})
		if err != nil {
			log.Fatalf("cannot connect to redis: %v", err)
		}
		root.cache = cache
		root.closers = append(root.closers, cache.Close)
	}

	tokens, err := jwtauth.NewTokenService(jwtauth.Config{
		AccessSecret:  configs.JWTAccessSecret,
		RefreshSecret: configs.JWTRefreshSecret,
		AccessTTL:     mustDuration("JWT_ACCESS_TTL", configs.JWTAccessTTL),
		RefreshTTL:    mustDuration("JWT_REFRESH_TTL", configs.JWTRefreshTTL),
	})
	if err != nil {
		log.Fatalf("cannot build token service: %v", err)
	}
	root.tokens = tokens

	return root
}

// Close releases external connections held by the adapters.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Error("closing adapter failed", "error", err)
		}
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokens
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateBootstrapAdminCommandHandler() commands.BootstrapAdminCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBootstrapAdminCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateUpdateAccountCommandHandler() commands.UpdateAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAccountCommandHandler() commands.DeleteAccountCommandHandler {
	var f commands.AccountAgentUoWFactory = FuncAccountAgentUoWFactory(func() commands.AccountAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteAgentCommandHandler() commands.DeleteAgentCommandHandler {
	var f commands.AccountAgentUoWFactory = FuncAccountAgentUoWFactory(func() commands.AccountAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	var f commands.AccountAgentUoWFactory = FuncAccountAgentUoWFactory(func() commands.AccountAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAgentCommandHandler() commands.UpdateAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher, c.cache, c.logger)
}

func (c *CompositionRoot) CreateChangePaymentCommandHandler() commands.ChangePaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePaymentCommandHandler(f, c.publisher, c.cache, c.logger)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f, c.publisher, c.cache, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f, c.publisher, c.cache, c.logger)
}

func (c *CompositionRoot) CreateRecountAgentStatsCommandHandler() commands.RecountAgentStatsCommandHandler {
	var f commands.AgentStatsUoWFactory = FuncAgentStatsUoWFactory(func() commands.AgentStatsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecountAgentStatsCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewAuthenticateQueryHandler(uow.AccountRepository())
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAccountsQueryHandler() queries.ListAccountsQueryHandler {
	return queries.NewListAccountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAgentsQueryHandler() queries.ListAgentsQueryHandler {
	return queries.NewListAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentQueryHandler() queries.GetAgentQueryHandler {
	return queries.NewGetAgentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every handler into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerDeps{
		CreateAccountHandler:        c.CreateCreateAccountCommandHandler(),
		UpdateAccountHandler:        c.CreateUpdateAccountCommandHandler(),
		DeleteAccountHandler:        c.CreateDeleteAccountCommandHandler(),
		CreateAgentHandler:          c.CreateCreateAgentCommandHandler(),
		UpdateAgentHandler:          c.CreateUpdateAgentCommandHandler(),
		DeleteAgentHandler:          c.CreateDeleteAgentCommandHandler(),
		CreateOrderHandler:          c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatusHandler:    c.CreateUpdateOrderStatusCommandHandler(),
		ChangePaymentHandler:        c.CreateChangePaymentCommandHandler(),
		AssignDeliveryHandler:       c.CreateAssignDeliveryCommandHandler(),
		UpdateDeliveryStatusHandler: c.CreateUpdateDeliveryStatusCommandHandler(),
		AuthenticateHandler:         c.CreateAuthenticateQueryHandler(),
		TrackOrderHandler:           c.CreateTrackOrderQueryHandler(),
		GetCustomerOrdersHandler:    c.CreateGetCustomerOrdersQueryHandler(),
		ListOrdersHandler:           c.CreateListOrdersQueryHandler(),
		ListAccountsHandler:         c.CreateListAccountsQueryHandler(),
		GetAccountHandler:           c.CreateGetAccountQueryHandler(),
		ListAgentsHandler:           c.CreateListAgentsQueryHandler(),
		GetAgentHandler:             c.CreateGetAgentQueryHandler(),
		ListDeliveriesHandler:       c.CreateListDeliveriesQueryHandler(),
		DashboardStatsHandler:       c.CreateGetDashboardStatsQueryHandler(),
		Tokens:                      c.tokens,
	})
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRecountAgentStatsCommandHandler(),
		c.configs.AgentStatsSchedule,
		c.logger,
	)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncAccountAgentUoWFactory func() commands.AccountAgentUoW

func (f FuncAccountAgentUoWFactory) Create() commands.AccountAgentUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAgentStatsUoWFactory func() commands.AgentStatsUoW

func (f FuncAgentStatsUoWFactory) Create() commands.AgentStatsUoW {
	return f()
}

func mustInt(name, value string) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", name, value)
	}
	return parsed
}

func mustDuration(name, value string) time.Duration {
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("%s must be a duration like 15m, got %q", name, value)
	}
	return parsed
}
