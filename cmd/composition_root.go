package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/eventbus"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/rabbitmq"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	registerer prometheus.Registerer

	publisher ports.MessagePublisher
	closers   []io.Closer
}

func NewCompositionRoot(
	ctx context.Context,
	config Config,
	gormDB *gorm.DB,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
		registerer: registerer,
	}

	publisher, err := c.createMessagePublisher(ctx)
	if err != nil {
		return nil, err
	}
	c.publisher = publisher

	return c, nil
}

func (c *CompositionRoot) createMessagePublisher(ctx context.Context) (ports.MessagePublisher, error) {
	switch c.config.EventBroker {
	case EventBrokerKafka:
		writer, err := kafka.NewWriter(c.config.KafkaBrokers, c.config.KafkaOrderEventsTopic)
		if err != nil {
			return nil, fmt.Errorf("kafka writer: %w", err)
		}
		publisher := kafka.NewPublisher(writer)
		c.closers = append(c.closers, publisher)
		return publisher, nil
	case EventBrokerRabbitMQ:
		publisher, err := rabbitmq.Dial(ctx, c.config.RabbitMQURL, c.config.RabbitMQQueue, c.logger)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, publisher)
		return publisher, nil
	default:
		bus := eventbus.NewBus(c.logger)
		eventbus.RegisterLoggingHandlers(bus, c.logger)
		return bus, nil
	}
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderWithCreditCheckCommandHandler() commands.PlaceOrderWithCreditCheckCommandHandler {
	return commands.NewPlaceOrderWithCreditCheckCommandHandler(
		FuncPlacementUoWFactory(func() commands.PlacementUoW {
			return c.uowFactory.Create()
		}),
		services.NewOrderPlacementService(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), services.NewOrderDomainService())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateVerifyCustomerCommandHandler() commands.VerifyCustomerCommandHandler {
	return commands.NewVerifyCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateChangeCustomerRiskLevelCommandHandler() commands.ChangeCustomerRiskLevelCommandHandler {
	return commands.NewChangeCustomerRiskLevelCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createOrder := c.CreateCreateOrderCommandHandler()
	placeOrder := c.CreatePlaceOrderWithCreditCheckCommandHandler()
	changeOrderStatus := c.CreateChangeOrderStatusCommandHandler()
	createCustomer := c.CreateCreateCustomerCommandHandler()
	verifyCustomer := c.CreateVerifyCustomerCommandHandler()
	changeRiskLevel := c.CreateChangeCustomerRiskLevelCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:       &createOrder,
		PlaceOrder:        &placeOrder,
		ChangeOrderStatus: &changeOrderStatus,
		CreateCustomer:    &createCustomer,
		VerifyCustomer:    &verifyCustomer,
		ChangeRiskLevel:   &changeRiskLevel,
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
		GetCustomer:       c.CreateGetCustomerQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relayJob, err := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(),
		c.config.OutboxBatchSize,
		c.registerer,
		c.logger,
	)
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(relayJob), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
