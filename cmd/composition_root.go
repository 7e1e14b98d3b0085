package cmd

import (
	"log/slog"

	httpin "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/eventlog"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/ports"
	"workshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      *postgres.GormUnitOfWorkFactory
	eventDispatcher ports.EventDispatcher
	logger          *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      postgres.NewGormUnitOfWorkFactory(gormDB),
		eventDispatcher: eventlog.NewSlogEventDispatcher(logger),
		logger:          logger,
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f, c.eventDispatcher)
}

func (c *CompositionRoot) CreateTransferVehicleCommandHandler() commands.TransferVehicleCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f, c.eventDispatcher)
}

func (c *CompositionRoot) CreateProposeQuoteCommandHandler() commands.ProposeQuoteCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProposeQuoteCommandHandler(f, c.eventDispatcher)
}

func (c *CompositionRoot) CreateApproveQuoteCommandHandler() commands.ApproveQuoteCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveQuoteCommandHandler(f, c.eventDispatcher)
}

func (c *CompositionRoot) CreateRejectQuoteCommandHandler() commands.RejectQuoteCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectQuoteCommandHandler(f, c.eventDispatcher)
}

func (c *CompositionRoot) CreateGetActiveCustomersQueryHandler() queries.GetActiveCustomersQueryHandler {
	return queries.NewGetActiveCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveWorkOrdersQueryHandler() queries.GetActiveWorkOrdersQueryHandler {
	return queries.NewGetActiveWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderStatisticsQueryHandler() queries.GetWorkOrderStatisticsQueryHandler {
	return queries.NewGetWorkOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterCustomerCommandHandler(),
		c.CreateTransferVehicleCommandHandler(),
		c.CreateCreateWorkOrderCommandHandler(),
		c.CreateProposeQuoteCommandHandler(),
		c.CreateApproveQuoteCommandHandler(),
		c.CreateRejectQuoteCommandHandler(),
		c.CreateGetActiveCustomersQueryHandler(),
		c.CreateGetActiveWorkOrdersQueryHandler(),
		c.CreateGetWorkOrderStatisticsQueryHandler(),
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
