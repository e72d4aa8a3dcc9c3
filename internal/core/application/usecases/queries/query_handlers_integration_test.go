package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "kds/internal/adapters/out/postgres"
	"kds/internal/core/application/usecases/queries"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/core/domain/model/settings"
	"kds/internal/core/domain/model/station"
	"kds/internal/core/ports"
	"kds/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ...order.StatusChanged) error { return nil }

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	hubID     kernel.UUID
	now       time.Time
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, noopPublisher{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, stations, kitchen_settings CASCADE").Error
	suite.Require().NoError(err)
	suite.hubID = kernel.NewUUID()
	suite.now = time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_PriorityThenAge() {
	ctx := context.Background()
	oldNormal := suite.addOrder("1", order.Normal, 40*time.Minute, nil)
	newRush := suite.addOrder("2", order.Rush, 5*time.Minute, nil)
	oldRush := suite.addOrder("3", order.Rush, 20*time.Minute, nil)
	vip := suite.addOrder("4", order.VIP, time.Minute, nil)
	served := suite.addOrder("5", order.VIP, time.Minute, nil)
	suite.transition(served, func(o *order.Order) error {
		if err := o.MarkReady(suite.now); err != nil {
			return err
		}
		return o.Serve(suite.now)
	})
	suite.addOrder("6", order.VIP, time.Minute, nil).withHub(suite, kernel.NewUUID())

	query, err := queries.NewGetActiveOrdersQuery(suite.hubID, nil, suite.now)
	suite.Require().NoError(err)

	views, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal([]string{vip.number, oldRush.number, newRush.number, oldNormal.number}, numbers(views))
	suite.Equal(40, views[3].ElapsedMinutes)
	suite.Equal("40m", views[3].ElapsedDisplay)
	suite.Equal("critical", views[3].StatusClass)
	suite.Equal("warning", views[1].StatusClass)
	suite.Empty(views[0].StatusClass)
	suite.Len(views[0].Items, 1)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_UsesHubThresholds() {
	ctx := context.Background()
	suite.addOrder("1", order.Normal, 10*time.Minute, nil)

	uow := suite.factory.Create()
	s, err := uow.SettingsRepository().GetOrCreate(ctx, suite.hubID)
	suite.Require().NoError(err)
	suite.Require().NoError(s.SetNumber(settings.WarningTimeMinutes, 5))
	suite.Require().NoError(uow.SettingsRepository().Save(ctx, s))

	query, err := queries.NewGetActiveOrdersQuery(suite.hubID, nil, suite.now)
	suite.Require().NoError(err)
	views, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal("warning", views[0].StatusClass)

	suite.Require().NoError(s.Toggle(settings.ColorCodingEnabled, false))
	suite.Require().NoError(uow.SettingsRepository().Save(ctx, s))
	views, err = queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(views[0].StatusClass)
}

func (suite *QueryHandlersTestSuite) TestActiveOrders_StationFilter() {
	ctx := context.Background()
	grill, err := station.NewStation(kernel.NewUUID(), suite.hubID, station.Attributes{Name: "Grill", Code: "GRL", IsActive: true})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.factory.Create().StationRepository().Add(ctx, grill))

	grillID := grill.ID()
	atGrill := suite.addOrder("1", order.Normal, time.Minute, &grillID)
	suite.addOrder("2", order.Normal, time.Minute, nil)

	query, err := queries.NewGetActiveOrdersQuery(suite.hubID, []kernel.UUID{grillID}, suite.now)
	suite.Require().NoError(err)
	views, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal([]string{atGrill.number}, numbers(views))
	suite.Require().NotNil(views[0].Items[0].StationID)
	suite.True(views[0].Items[0].StationID.IsEqual(grillID))
}

func (suite *QueryHandlersTestSuite) TestReadyOrders_ByReadyAt() {
	ctx := context.Background()
	late := suite.addOrder("1", order.VIP, 30*time.Minute, nil)
	early := suite.addOrder("2", order.Normal, 10*time.Minute, nil)
	suite.addOrder("3", order.Normal, 10*time.Minute, nil)
	suite.transition(late, func(o *order.Order) error { return o.MarkReady(suite.now.Add(-time.Minute)) })
	suite.transition(early, func(o *order.Order) error { return o.MarkReady(suite.now.Add(-5 * time.Minute)) })

	query, err := queries.NewGetReadyOrdersQuery(suite.hubID, suite.now)
	suite.Require().NoError(err)
	views, err := queries.NewGetReadyOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal([]string{early.number, late.number}, numbers(views))
	suite.Require().NotNil(views[0].ReadyAt)
	suite.True(views[0].ReadyAt.Equal(suite.now.Add(-5 * time.Minute)))
}

func (suite *QueryHandlersTestSuite) TestHistory_FilterSearchAndLimit() {
	ctx := context.Background()
	served := suite.addOrder("A-100", order.Normal, 50*time.Minute, nil)
	paid := suite.addOrder("B-200", order.Normal, 40*time.Minute, nil)
	cancelled := suite.addOrder("C-300", order.Normal, 30*time.Minute, nil)
	suite.addOrder("D-400", order.Normal, 20*time.Minute, nil)

	suite.transition(served, func(o *order.Order) error {
		if err := o.MarkReady(suite.now); err != nil {
			return err
		}
		return o.Serve(suite.now.Add(-10 * time.Minute))
	})
	suite.transition(paid, func(o *order.Order) error {
		if err := o.MarkReady(suite.now); err != nil {
			return err
		}
		if err := o.Serve(suite.now.Add(-time.Minute)); err != nil {
			return err
		}
		return o.Pay(suite.now)
	})
	suite.transition(cancelled, func(o *order.Order) error { return o.Cancel("out of stock", suite.now) })

	handler := queries.NewGetOrderHistoryQueryHandler(suite.db)

	query, err := queries.NewGetOrderHistoryQuery(suite.hubID, queries.HistoryFilter{}, suite.now)
	suite.Require().NoError(err)
	views, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal([]string{paid.number, served.number, cancelled.number}, numbers(views))

	query, err = queries.NewGetOrderHistoryQuery(suite.hubID, queries.HistoryFilter{Search: "b-2"}, suite.now)
	suite.Require().NoError(err)
	views, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal([]string{paid.number}, numbers(views))

	query, err = queries.NewGetOrderHistoryQuery(suite.hubID, queries.HistoryFilter{Search: "%"}, suite.now)
	suite.Require().NoError(err)
	views, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(views, "wildcards in the search text match literally")

	from := suite.now.Add(-45 * time.Minute)
	query, err = queries.NewGetOrderHistoryQuery(suite.hubID, queries.HistoryFilter{From: &from, Limit: 1}, suite.now)
	suite.Require().NoError(err)
	views, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal([]string{paid.number}, numbers(views))
}

func (suite *QueryHandlersTestSuite) TestHistory_ElapsedStopsAtClose() {
	ctx := context.Background()
	served := suite.addOrder("E-500", order.Normal, 50*time.Minute, nil)
	cancelled := suite.addOrder("F-600", order.Normal, 90*time.Minute, nil)

	suite.transition(served, func(o *order.Order) error {
		if err := o.MarkReady(suite.now.Add(-20 * time.Minute)); err != nil {
			return err
		}
		return o.Serve(suite.now.Add(-10 * time.Minute))
	})
	suite.transition(cancelled, func(o *order.Order) error { return o.Cancel("guest left", suite.now) })

	query, err := queries.NewGetOrderHistoryQuery(suite.hubID, queries.HistoryFilter{}, suite.now)
	suite.Require().NoError(err)
	views, err := queries.NewGetOrderHistoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Equal([]string{served.number, cancelled.number}, numbers(views))

	suite.Equal(40, views[0].ElapsedMinutes)
	suite.Equal("40m", views[0].ElapsedDisplay)
	suite.Equal(90, views[1].ElapsedMinutes)
	suite.Equal("1:30", views[1].ElapsedDisplay)
	for _, v := range views {
		suite.Empty(v.StatusClass)
	}
}

func (suite *QueryHandlersTestSuite) TestCounts() {
	ctx := context.Background()
	suite.addOrder("1", order.Normal, time.Minute, nil)
	suite.addOrder("2", order.Normal, time.Minute, nil)
	accepted := suite.addOrder("3", order.Normal, time.Minute, nil)
	suite.transition(accepted, func(o *order.Order) error { return o.Accept(suite.now) })

	query, err := queries.NewGetOrderCountsQuery(suite.hubID)
	suite.Require().NoError(err)
	counts, err := queries.NewGetOrderCountsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(2, counts[order.Pending])
	suite.Equal(1, counts[order.Preparing])
	suite.Equal(0, counts[order.Ready])
	suite.Equal(3, counts.Active())
	suite.Len(counts, len(order.AllStatuses()))
}

func (suite *QueryHandlersTestSuite) TestGetOrder() {
	ctx := context.Background()
	o := suite.addOrder("1", order.Rush, 3*time.Minute, nil)
	handler := queries.NewGetOrderQueryHandler(suite.db)

	query, err := queries.NewGetOrderQuery(suite.hubID, o.id, suite.now)
	suite.Require().NoError(err)
	view, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(order.Rush, view.Priority)
	suite.Equal("3m", view.ElapsedDisplay)
	suite.Require().Len(view.Items, 1)
	suite.Equal([]string{}, view.Items[0].Modifiers)

	query, err = queries.NewGetOrderQuery(kernel.NewUUID(), o.id, suite.now)
	suite.Require().NoError(err)
	_, err = handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetSettings_DefaultsWithoutRow() {
	ctx := context.Background()
	query, err := queries.NewGetSettingsQuery(suite.hubID)
	suite.Require().NoError(err)

	values, err := queries.NewGetSettingsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(settings.Defaults(), values)

	uow := suite.factory.Create()
	s, err := uow.SettingsRepository().GetOrCreate(ctx, suite.hubID)
	suite.Require().NoError(err)
	suite.Require().NoError(s.Toggle(settings.AutoBumpEnabled, true))
	suite.Require().NoError(uow.SettingsRepository().Save(ctx, s))

	values, err = queries.NewGetSettingsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(values.AutoBumpEnabled)
	suite.Equal(15, values.WarningTimeMinutes)
}

func (suite *QueryHandlersTestSuite) TestListStations() {
	ctx := context.Background()
	repo := suite.factory.Create().StationRepository()
	for _, attrs := range []station.Attributes{
		{Name: "Pastry", Code: "PST", SortOrder: 2},
		{Name: "Grill", Code: "GRL", SortOrder: 1, IsActive: true},
		{Name: "Bar", Code: "BAR", SortOrder: 1},
	} {
		s, err := station.NewStation(kernel.NewUUID(), suite.hubID, attrs)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(ctx, s))
	}

	query, err := queries.NewListStationsQuery(suite.hubID)
	suite.Require().NoError(err)
	views, err := queries.NewListStationsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(views, 3)
	suite.Equal("BAR", views[0].Code)
	suite.Equal("GRL", views[1].Code)
	suite.True(views[1].IsActive)
	suite.Equal("PST", views[2].Code)
}

type seededOrder struct {
	id     kernel.UUID
	number string
}

// withHub moves a seeded order to another hub.
func (o seededOrder) withHub(suite *QueryHandlersTestSuite, hubID kernel.UUID) {
	suite.Require().NoError(suite.db.Exec("UPDATE orders SET hub_id = ? WHERE id = ?", hubID.Bytes(), o.id.Bytes()).Error)
}

func (suite *QueryHandlersTestSuite) addOrder(
	number string,
	priority order.Priority,
	age time.Duration,
	stationID *kernel.UUID,
) seededOrder {
	created := suite.now.Add(-age)
	o, err := order.NewOrder(kernel.NewUUID(), suite.hubID, order.Details{OrderNumber: number, Priority: priority}, created)
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), order.ItemLine{ProductName: "Dish " + number, Quantity: 1, StationID: stationID}, created)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(item))
	suite.Require().NoError(suite.factory.Create().OrderRepository().Add(context.Background(), o))
	return seededOrder{id: o.ID(), number: number}
}

func (suite *QueryHandlersTestSuite) transition(seeded seededOrder, change func(*order.Order) error) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	o, err := uow.OrderRepository().GetForUpdate(ctx, suite.hubID, seeded.id)
	suite.Require().NoError(err)
	suite.Require().NoError(change(o))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
}

func numbers(views []queries.OrderView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.OrderNumber)
	}
	return out
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
