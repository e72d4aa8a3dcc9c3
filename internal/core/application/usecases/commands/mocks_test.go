package commands_test

import (
	"context"
	"time"

	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/core/domain/model/settings"
	"kds/internal/core/domain/model/station"
	"kds/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, hubID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, hubID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, hubID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, hubID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByItemForUpdate(ctx context.Context, hubID, itemID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, hubID, itemID)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListReadyBefore(
	ctx context.Context,
	hubID kernel.UUID,
	readyBefore time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, hubID, readyBefore)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockStationRepository struct{ mock.Mock }

func (m *MockStationRepository) Add(ctx context.Context, s *station.Station) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStationRepository) Update(ctx context.Context, s *station.Station) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockStationRepository) Get(ctx context.Context, hubID, id kernel.UUID) (*station.Station, error) {
	args := m.Called(ctx, hubID, id)
	s, _ := args.Get(0).(*station.Station)
	return s, args.Error(1)
}

func (m *MockStationRepository) Delete(ctx context.Context, hubID, id kernel.UUID) error {
	return m.Called(ctx, hubID, id).Error(0)
}

func (m *MockStationRepository) ListByHub(ctx context.Context, hubID kernel.UUID) ([]*station.Station, error) {
	args := m.Called(ctx, hubID)
	stations, _ := args.Get(0).([]*station.Station)
	return stations, args.Error(1)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) GetOrCreate(ctx context.Context, hubID kernel.UUID) (*settings.Settings, error) {
	args := m.Called(ctx, hubID)
	s, _ := args.Get(0).(*settings.Settings)
	return s, args.Error(1)
}

func (m *MockSettingsRepository) Save(ctx context.Context, s *settings.Settings) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSettingsRepository) ListAutoBumpEnabled(ctx context.Context) ([]*settings.Settings, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*settings.Settings)
	return list, args.Error(1)
}

type MockAuditLogRepository struct {
	mock.Mock
	entries []*audit.Entry
}

func (m *MockAuditLogRepository) Append(ctx context.Context, entry *audit.Entry) error {
	m.entries = append(m.entries, entry)
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAuditLogRepository) Actions() []audit.Action {
	actions := make([]audit.Action, 0, len(m.entries))
	for _, e := range m.entries {
		actions = append(actions, e.Action())
	}
	return actions
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StationRepository() ports.StationRepository {
	return m.Called().Get(0).(ports.StationRepository)
}

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	return m.Called().Get(0).(ports.SettingsRepository)
}

func (m *MockUoW) AuditLogRepository() ports.AuditLogRepository {
	return m.Called().Get(0).(ports.AuditLogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockIngestUoWFactory struct{ mock.Mock }

func (m *MockIngestUoWFactory) Create() commands.IngestUoW {
	return m.Called().Get(0).(commands.IngestUoW)
}

type MockAutoBumpUoWFactory struct{ mock.Mock }

func (m *MockAutoBumpUoWFactory) Create() commands.AutoBumpUoW {
	return m.Called().Get(0).(commands.AutoBumpUoW)
}

type MockStationUoWFactory struct{ mock.Mock }

func (m *MockStationUoWFactory) Create() commands.StationUoW {
	return m.Called().Get(0).(commands.StationUoW)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	return m.Called().Get(0).(commands.SettingsUoW)
}

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newOrderWithItems(hubID kernel.UUID, lines int) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), hubID, order.Details{OrderNumber: "17"}, testTime)
	if err != nil {
		panic(err)
	}
	for i := 0; i < lines; i++ {
		item, itemErr := order.NewItem(kernel.NewUUID(), order.ItemLine{ProductName: "Soup", Quantity: 1}, testTime)
		if itemErr != nil {
			panic(itemErr)
		}
		if err = o.AddItem(item); err != nil {
			panic(err)
		}
	}
	return o
}
