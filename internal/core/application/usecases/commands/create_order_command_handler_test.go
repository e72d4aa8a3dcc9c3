package commands_test

import (
	"errors"
	"testing"

	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/domain/model/audit"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/core/domain/model/settings"
	"kds/internal/core/domain/model/station"
	"kds/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ingestFixture struct {
	hubID        kernel.UUID
	grill        *station.Station
	orderRepo    *MockOrderRepository
	stationRepo  *MockStationRepository
	settingsRepo *MockSettingsRepository
	auditRepo    *MockAuditLogRepository
	uow          *MockUoW
	factory      *MockIngestUoWFactory
}

func newIngestFixture(t *testing.T, autoAccept bool) *ingestFixture {
	t.Helper()
	hubID := kernel.NewUUID()

	grill, err := station.NewStation(kernel.NewUUID(), hubID, station.Attributes{Name: "Grill", Code: "GRL", IsActive: true})
	require.NoError(t, err)

	hubSettings, err := settings.NewSettings(hubID)
	require.NoError(t, err)
	require.NoError(t, hubSettings.Toggle(settings.AutoAcceptOrders, autoAccept))

	f := &ingestFixture{
		hubID:        hubID,
		grill:        grill,
		orderRepo:    new(MockOrderRepository),
		stationRepo:  new(MockStationRepository),
		settingsRepo: new(MockSettingsRepository),
		auditRepo:    new(MockAuditLogRepository),
		uow:          new(MockUoW),
		factory:      new(MockIngestUoWFactory),
	}

	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
	f.uow.On("SettingsRepository").Return(f.settingsRepo).Maybe()
	f.uow.On("StationRepository").Return(f.stationRepo).Maybe()
	f.uow.On("OrderRepository").Return(f.orderRepo).Maybe()
	f.uow.On("AuditLogRepository").Return(f.auditRepo).Maybe()
	f.settingsRepo.On("GetOrCreate", mock.Anything, hubID).Return(hubSettings, nil).Once()
	f.stationRepo.On("ListByHub", mock.Anything, hubID).Return([]*station.Station{grill}, nil).Once()

	return f
}

func (f *ingestFixture) assertExpectations(t *testing.T) {
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.orderRepo.AssertExpectations(t)
	f.stationRepo.AssertExpectations(t)
	f.settingsRepo.AssertExpectations(t)
	f.auditRepo.AssertExpectations(t)
}

func newCreateOrderCommand(t *testing.T, hubID kernel.UUID, lines ...commands.OrderLine) commands.CreateOrderCommand {
	t.Helper()
	if len(lines) == 0 {
		lines = []commands.OrderLine{
			{ProductID: "p-1", ProductName: "Burger", Quantity: 2, StationCode: "grl"},
			{ProductID: "p-2", ProductName: "Lemonade", Quantity: 1, StationCode: "BAR"},
		}
	}
	cmd, err := commands.NewCreateOrderCommand(hubID, "sale-1", "A-17", "4", "", order.Rush, lines, "")
	require.NoError(t, err)
	return cmd
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should reject a sale without lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "s", "1", "", "", order.Normal, nil, "")

		require.ErrorIs(t, err, commands.ErrOrderLinesAreRequired)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should join hub, number and priority errors", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "s", " ", "", "", order.Priority(9),
			[]commands.OrderLine{{ProductName: "x", Quantity: 1}}, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)
		assert.Contains(t, err.Error(), "hub id")
		assert.Contains(t, err.Error(), "priority")
	})

	t.Run("should default the actor to system", func(t *testing.T) {
		cmd := newCreateOrderCommand(t, kernel.NewUUID())

		require.NoError(t, cmd.Validate())
		assert.Equal(t, audit.SystemActor, cmd.Actor())
		assert.Len(t, cmd.Lines(), 2)
	})
}

func TestCreateOrderCommandHandler_Handle_Pending(t *testing.T) {
	ctx := t.Context()
	f := newIngestFixture(t, false)
	cmd := newCreateOrderCommand(t, f.hubID)

	var saved *order.Order
	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil).Once()
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, result.Status)
	require.NotNil(t, saved)
	assert.True(t, saved.ID().IsEqual(result.OrderID))
	assert.Equal(t, order.Rush, saved.Priority())
	require.Len(t, saved.Items(), 2)
	require.NotNil(t, saved.Items()[0].StationID())
	assert.True(t, saved.Items()[0].StationID().IsEqual(f.grill.ID()))
	assert.Nil(t, saved.Items()[1].StationID(), "unknown station codes stay unrouted")
	assert.Equal(t, []audit.Action{audit.Received}, f.auditRepo.Actions())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AutoAccept(t *testing.T) {
	ctx := t.Context()
	f := newIngestFixture(t, true)
	cmd := newCreateOrderCommand(t, f.hubID)

	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	f.auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Twice()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Preparing, result.Status)
	assert.Equal(t, []audit.Action{audit.Received, audit.Accepted}, f.auditRepo.Actions())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidLine(t *testing.T) {
	ctx := t.Context()
	f := newIngestFixture(t, false)
	cmd := newCreateOrderCommand(t, f.hubID, commands.OrderLine{ProductName: "Burger", Quantity: 0})

	h := commands.NewCreateOrderCommandHandler(f.factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	f.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	f := newIngestFixture(t, false)
	cmd := newCreateOrderCommand(t, f.hubID)
	expected := errors.New("insert failed")

	f.orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(expected).Once()

	h := commands.NewCreateOrderCommandHandler(f.factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, expected)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockIngestUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertExpectations(t)
}
