package cmd

import (
	"log/slog"

	httpin "kds/internal/adapters/in/http"
	"kds/internal/adapters/out/postgres"
	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/application/usecases/queries"
	"kds/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IngestUoWFactory = FuncIngestUoWFactory(func() commands.IngestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateOrderTransitionCommandHandler() commands.OrderTransitionCommandHandler {
	return commands.NewOrderTransitionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderPriorityCommandHandler() commands.SetOrderPriorityCommandHandler {
	return commands.NewSetOrderPriorityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateItemTransitionCommandHandler() commands.ItemTransitionCommandHandler {
	return commands.NewItemTransitionCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAutoBumpReadyOrdersCommandHandler() commands.AutoBumpReadyOrdersCommandHandler {
	var f commands.AutoBumpUoWFactory = FuncAutoBumpUoWFactory(func() commands.AutoBumpUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAutoBumpReadyOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveStationCommandHandler() commands.SaveStationCommandHandler {
	return commands.NewSaveStationCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateDeleteStationCommandHandler() commands.DeleteStationCommandHandler {
	return commands.NewDeleteStationCommandHandler(c.stationUoWFactory())
}

func (c *CompositionRoot) CreateSettingsCommandHandler() commands.SettingsCommandHandler {
	var f commands.SettingsUoWFactory = FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettingsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReadyOrdersQueryHandler() queries.GetReadyOrdersQueryHandler {
	return queries.NewGetReadyOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderCountsQueryHandler() queries.GetOrderCountsQueryHandler {
	return queries.NewGetOrderCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStationsQueryHandler() queries.ListStationsQueryHandler {
	return queries.NewListStationsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers wires every use case served over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	createOrder := c.CreateCreateOrderCommandHandler()
	transitionOrder := c.CreateOrderTransitionCommandHandler()
	setPriority := c.CreateSetOrderPriorityCommandHandler()
	transitionItem := c.CreateItemTransitionCommandHandler()
	saveStation := c.CreateSaveStationCommandHandler()
	deleteStation := c.CreateDeleteStationCommandHandler()
	editSettings := c.CreateSettingsCommandHandler()

	return httpin.Handlers{
		CreateOrder:     &createOrder,
		TransitionOrder: &transitionOrder,
		SetPriority:     &setPriority,
		TransitionItem:  &transitionItem,
		SaveStation:     &saveStation,
		DeleteStation:   &deleteStation,
		Settings:        &editSettings,

		ActiveOrders: c.CreateGetActiveOrdersQueryHandler(),
		ReadyOrders:  c.CreateGetReadyOrdersQueryHandler(),
		OrderHistory: c.CreateGetOrderHistoryQueryHandler(),
		OrderCounts:  c.CreateGetOrderCountsQueryHandler(),
		Order:        c.CreateGetOrderQueryHandler(),
		ReadSettings: c.CreateGetSettingsQueryHandler(),
		Stations:     c.CreateListStationsQueryHandler(),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stationUoWFactory() commands.StationUoWFactory {
	return FuncStationUoWFactory(func() commands.StationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncIngestUoWFactory func() commands.IngestUoW

func (f FuncIngestUoWFactory) Create() commands.IngestUoW {
	return f()
}

type FuncAutoBumpUoWFactory func() commands.AutoBumpUoW

func (f FuncAutoBumpUoWFactory) Create() commands.AutoBumpUoW {
	return f()
}

type FuncStationUoWFactory func() commands.StationUoW

func (f FuncStationUoWFactory) Create() commands.StationUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
