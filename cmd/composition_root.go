package cmd

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"moveout/internal/adapters/out/geo"
	"moveout/internal/adapters/out/kafka"
	"moveout/internal/adapters/out/payments"
	"moveout/internal/adapters/out/postgres"
	"moveout/internal/core/application/usecases/commands"
	"moveout/internal/core/application/usecases/queries"
	"moveout/internal/core/domain/services"
	"moveout/internal/core/ports"
	"moveout/internal/jobs"
	"moveout/internal/observability"
)

// CompositionRoot wires adapters into application handlers. Handlers are
// built per request by the Create* methods; shared collaborators live on
// the root itself.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	payments   *payments.StripeClient
	validator  ports.AddressValidator
	pricing    commands.Pricing
	planner    services.RoutePlanner
	metrics    *observability.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	pricing, err := commands.NewPricing(config.MoverShareRate, config.PerDiemRate)
	if err != nil {
		pricing = commands.DefaultPricing()
		logger.Warn("invalid pricing configuration, using defaults", "error", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher(config.KafkaBrokers, logger),
		payments:   payments.NewStripeClient(config.StripeAPIKey, logger),
		validator:  geo.NewClient(config.GeoServiceURL),
		pricing:    pricing,
		planner:    services.NewDefaultRoutePlanner(),
		metrics:    observability.NewMetrics(prometheus.DefaultRegisterer),
		logger:     logger,
	}
}

// Metrics exposes the collectors for the HTTP layer.
func (c *CompositionRoot) Metrics() *observability.Metrics {
	return c.metrics
}

// Close releases the shared outbound connections.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderJobUoWFactory(), c.validator, c.publisher, c.pricing, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(
		c.orderJobUoWFactory(), c.payments, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreateReturnJobCommandHandler() commands.CreateReturnJobCommandHandler {
	return commands.NewCreateReturnJobCommandHandler(
		c.orderJobUoWFactory(), c.payments, c.publisher, c.pricing, c.logger)
}

func (c *CompositionRoot) CreateRegisterMoverCommandHandler() commands.RegisterMoverCommandHandler {
	return commands.NewRegisterMoverCommandHandler(c.moverUoWFactory())
}

func (c *CompositionRoot) CreateAcceptJobCommandHandler() commands.AcceptJobCommandHandler {
	return commands.NewAcceptJobCommandHandler(c.orderJobUoWFactory())
}

func (c *CompositionRoot) CreateAcceptRouteCommandHandler() commands.AcceptRouteCommandHandler {
	return commands.NewAcceptRouteCommandHandler(c.CreateAcceptJobCommandHandler())
}

func (c *CompositionRoot) CreateRequestArrivalConfirmationCommandHandler() commands.RequestArrivalConfirmationCommandHandler {
	return commands.NewRequestArrivalConfirmationCommandHandler(
		c.jobUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateConfirmHandoffCommandHandler() commands.ConfirmHandoffCommandHandler {
	return commands.NewConfirmHandoffCommandHandler(c.fullUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCompleteStorageDeliveryCommandHandler() commands.CompleteStorageDeliveryCommandHandler {
	return commands.NewCompleteStorageDeliveryCommandHandler(
		c.fullUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(
		c.orderJobUoWFactory(), c.payments, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetAvailableJobsQueryHandler() queries.GetAvailableJobsQueryHandler {
	// The mover-scoped board reads through the repositories outside a
	// transaction, like route planning.
	uow := c.uowFactory.Create()
	return queries.NewGetAvailableJobsQueryHandler(
		c.gormDB, uow.JobRepository(), uow.MoverRepository(), c.planner)
}

func (c *CompositionRoot) CreateGetMoverJobsQueryHandler() queries.GetMoverJobsQueryHandler {
	return queries.NewGetMoverJobsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSuggestRouteQueryHandler() queries.SuggestRouteQueryHandler {
	// Route planning reads through the repositories outside a transaction.
	uow := c.uowFactory.Create()
	return queries.NewSuggestRouteQueryHandler(
		uow.JobRepository(), uow.MoverRepository(), c.planner)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetAvailableJobsQueryHandler(), c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) orderJobUoWFactory() commands.OrderJobUoWFactory {
	return FuncOrderJobUoWFactory(func() commands.OrderJobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return FuncJobUoWFactory(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) moverUoWFactory() commands.MoverUoWFactory {
	return FuncMoverUoWFactory(func() commands.MoverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderJobUoWFactory func() commands.OrderJobUoW

func (f FuncOrderJobUoWFactory) Create() commands.OrderJobUoW {
	return f()
}

type FuncJobUoWFactory func() commands.JobUoW

func (f FuncJobUoWFactory) Create() commands.JobUoW {
	return f()
}

type FuncMoverUoWFactory func() commands.MoverUoW

func (f FuncMoverUoWFactory) Create() commands.MoverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
