package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"kds/api"
	kdshttp "kds/internal/adapters/in/http"
	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/application/usecases/queries"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
	"kds/internal/core/domain/model/settings"
	"kds/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderCreator struct{ mock.Mock }

func (m *MockOrderCreator) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockOrderTransitioner struct{ mock.Mock }

func (m *MockOrderTransitioner) Handle(ctx context.Context, cmd commands.OrderTransitionCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockItemTransitioner struct{ mock.Mock }

func (m *MockItemTransitioner) Handle(ctx context.Context, cmd commands.ItemTransitionCommand) (commands.ItemTransitionResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ItemTransitionResult), args.Error(1)
}

type MockStationSaver struct{ mock.Mock }

func (m *MockStationSaver) Handle(ctx context.Context, cmd commands.SaveStationCommand) (kernel.UUID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

type MockSettingsEditor struct{ mock.Mock }

func (m *MockSettingsEditor) Save(ctx context.Context, cmd commands.SaveSettingsCommand) (settings.Values, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(settings.Values), args.Error(1)
}

func (m *MockSettingsEditor) Toggle(ctx context.Context, cmd commands.ToggleSettingCommand) (settings.Values, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(settings.Values), args.Error(1)
}

func (m *MockSettingsEditor) SetNumber(ctx context.Context, cmd commands.SetNumberSettingCommand) (settings.Values, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(settings.Values), args.Error(1)
}

func (m *MockSettingsEditor) Reset(ctx context.Context, cmd commands.ResetSettingsCommand) (settings.Values, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(settings.Values), args.Error(1)
}

type MockActiveOrdersReader struct{ mock.Mock }

func (m *MockActiveOrdersReader) Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockOrderCountsReader struct{ mock.Mock }

func (m *MockOrderCountsReader) Handle(ctx context.Context, query queries.GetOrderCountsQuery) (queries.OrderCounts, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderCounts), args.Error(1)
}

type MockStationsReader struct{ mock.Mock }

func (m *MockStationsReader) Handle(ctx context.Context, query queries.ListStationsQuery) ([]queries.StationView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.StationView), args.Error(1)
}

type MockPrioritySetter struct{ mock.Mock }

func (m *MockPrioritySetter) Handle(ctx context.Context, cmd commands.SetOrderPriorityCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockStationDeleter struct{ mock.Mock }

func (m *MockStationDeleter) Handle(ctx context.Context, cmd commands.DeleteStationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockReadyOrdersReader struct{ mock.Mock }

func (m *MockReadyOrdersReader) Handle(ctx context.Context, query queries.GetReadyOrdersQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockOrderHistoryReader struct{ mock.Mock }

func (m *MockOrderHistoryReader) Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockSettingsReader struct{ mock.Mock }

func (m *MockSettingsReader) Handle(ctx context.Context, query queries.GetSettingsQuery) (settings.Values, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(settings.Values), args.Error(1)
}

type fixture struct {
	e           *echo.Echo
	hubID       kernel.UUID
	creator     *MockOrderCreator
	transitions *MockOrderTransitioner
	items       *MockItemTransitioner
	saver       *MockStationSaver
	settings    *MockSettingsEditor
	active      *MockActiveOrdersReader
	order       *MockOrderReader
	counts      *MockOrderCountsReader
	stations    *MockStationsReader
	priority    *MockPrioritySetter
	deleter     *MockStationDeleter
	ready       *MockReadyOrdersReader
	history     *MockOrderHistoryReader
	readConfig  *MockSettingsReader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		hubID:       kernel.NewUUID(),
		creator:     &MockOrderCreator{},
		transitions: &MockOrderTransitioner{},
		items:       &MockItemTransitioner{},
		saver:       &MockStationSaver{},
		settings:    &MockSettingsEditor{},
		active:      &MockActiveOrdersReader{},
		order:       &MockOrderReader{},
		counts:      &MockOrderCountsReader{},
		stations:    &MockStationsReader{},
		priority:    &MockPrioritySetter{},
		deleter:     &MockStationDeleter{},
		ready:       &MockReadyOrdersReader{},
		history:     &MockOrderHistoryReader{},
		readConfig:  &MockSettingsReader{},
	}

	registry := prometheus.NewRegistry()
	metrics, err := kdshttp.NewMetrics(registry)
	require.NoError(t, err)

	server := kdshttp.NewServer(kdshttp.Handlers{
		CreateOrder:     f.creator,
		TransitionOrder: f.transitions,
		TransitionItem:  f.items,
		SaveStation:     f.saver,
		Settings:        f.settings,
		ActiveOrders:    f.active,
		Order:           f.order,
		OrderCounts:     f.counts,
		Stations:        f.stations,
		SetPriority:     f.priority,
		DeleteStation:   f.deleter,
		ReadyOrders:     f.ready,
		OrderHistory:    f.history,
		ReadSettings:    f.readConfig,
	}, metrics)

	doc, err := api.GetSwagger()
	require.NoError(t, err)

	f.e, err = kdshttp.NewEcho(server, doc, metrics, registry, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return f
}

func (f *fixture) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(kdshttp.HubHeader, f.hubID.String())
	for k, v := range headers {
		if v == "" {
			req.Header.Del(k)
			continue
		}
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/health", "", map[string]string{kdshttp.HubHeader: ""})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestHubHeader(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"missing", ""},
		{"not a uuid", "hub-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.do(http.MethodGet, "/api/v1/orders/counts", "", map[string]string{kdshttp.HubHeader: tt.value})

			require.Equal(t, http.StatusBadRequest, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.InDelta(t, 400, body["code"], 0)
			assert.Contains(t, body["error"], "X-Hub-ID")
			f.counts.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/api/v2/nothing", "", map[string]string{kdshttp.HubHeader: ""})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	f := newFixture(t)
	orderID := kernel.NewUUID()
	f.creator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		lines := cmd.Lines()
		return cmd.HubID().IsEqual(f.hubID) &&
			cmd.Actor() == "cashier-3" &&
			cmd.OrderNumber() == "A-17" &&
			cmd.Priority() == order.VIP &&
			len(lines) == 1 &&
			lines[0].StationCode == "GRL" &&
			lines[0].Quantity == 2
	})).Return(commands.CreateOrderResult{OrderID: orderID, Status: order.Pending}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders",
		`{"order_number":"A-17","priority":"vip","lines":[{"product_name":"Burger","quantity":2,"station_code":"GRL"}]}`,
		map[string]string{kdshttp.ActorHeader: "cashier-3"})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, orderID.String(), body["id"])
	assert.Equal(t, "pending", body["status"])
	f.creator.AssertExpectations(t)
}

func TestCreateOrder_RejectedByDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero quantity", `{"order_number":"A-1","lines":[{"product_name":"Burger","quantity":0}]}`},
		{"no lines", `{"order_number":"A-1","lines":[]}`},
		{"unknown priority", `{"order_number":"A-1","priority":"urgent","lines":[{"product_name":"Burger","quantity":1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rec := f.do(http.MethodPost, "/api/v1/orders", tt.body, nil)

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, false, decode(t, rec)["success"])
			f.creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderTransitions(t *testing.T) {
	t.Run("bump returns the new status", func(t *testing.T) {
		f := newFixture(t)
		orderID := kernel.NewUUID()
		f.transitions.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.OrderTransitionCommand) bool {
			return cmd.Action() == commands.ActionBump && cmd.OrderID().IsEqual(orderID) && cmd.Actor() == "system"
		})).Return(order.Preparing, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/bump", "", nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, map[string]any{"success": true, "status": "preparing"}, decode(t, rec))
	})

	t.Run("invalid transition is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.transitions.On("Handle", mock.Anything, mock.Anything).
			Return(order.Unknown, errs.NewTransitionIsInvalidError("order", "accept", "cancelled")).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/accept", "", nil)

		require.Equal(t, http.StatusConflict, rec.Code)
		body := decode(t, rec)
		assert.InDelta(t, 409, body["code"], 0)
		assert.Contains(t, body["error"], "cancelled")
	})

	t.Run("cancel passes the reason", func(t *testing.T) {
		f := newFixture(t)
		f.transitions.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.OrderTransitionCommand) bool {
			return cmd.Action() == commands.ActionCancel && cmd.Reason() == "guest left"
		})).Return(order.Cancelled, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel", `{"reason":"guest left"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "cancelled", decode(t, rec)["status"])
	})

	t.Run("malformed order id", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/orders/42/serve", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.transitions.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestMarkItemReady_ReportsOrderStatus(t *testing.T) {
	f := newFixture(t)
	f.items.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ItemTransitionCommand) bool {
		return cmd.Action() == commands.ItemActionReady
	})).Return(commands.ItemTransitionResult{ItemStatus: order.ItemReady, OrderStatus: order.Ready}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/items/"+kernel.NewUUID().String()+"/ready", "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"success": true, "status": "ready", "order_status": "ready"}, decode(t, rec))
}

func TestGetOrder_NotFound(t *testing.T) {
	f := newFixture(t)
	orderID := kernel.NewUUID()
	f.order.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderView{}, errs.NewObjectNotFoundError("order", orderID)).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.InDelta(t, 404, decode(t, rec)["code"], 0)
}

func TestGetActiveOrders(t *testing.T) {
	f := newFixture(t)
	stationID := kernel.NewUUID()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.active.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderView{{
		ID:             kernel.NewUUID(),
		OrderNumber:    "A-17",
		Status:         order.Pending,
		Priority:       order.Rush,
		CreatedAt:      created,
		ElapsedMinutes: 75,
		ElapsedDisplay: "1:15",
		StatusClass:    order.ClassCritical,
		Items: []queries.ItemView{{
			ID:          kernel.NewUUID(),
			ProductName: "Burger",
			Quantity:    1,
			Modifiers:   []string{},
			StationID:   &stationID,
			Status:      order.ItemPending,
		}},
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/active?station_id="+stationID.String(), "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "rush", body[0]["priority"])
	assert.Equal(t, "1:15", body[0]["elapsed_display"])
	assert.Equal(t, "critical", body[0]["status_class"])
	assert.Equal(t, "2024-05-01T12:00:00Z", body[0]["created_at"])
	assert.NotContains(t, body[0], "ready_at")
	items := body[0]["items"].([]any)
	assert.Equal(t, stationID.String(), items[0].(map[string]any)["station_id"])
}

func TestGetReadyOrders(t *testing.T) {
	f := newFixture(t)
	readyAt := time.Date(2024, 5, 1, 12, 10, 0, 0, time.UTC)
	f.ready.On("Handle", mock.Anything, mock.Anything).Return([]queries.OrderView{{
		ID:             kernel.NewUUID(),
		OrderNumber:    "B-4",
		Status:         order.Ready,
		Priority:       order.Normal,
		CreatedAt:      readyAt.Add(-8 * time.Minute),
		ReadyAt:        &readyAt,
		ElapsedMinutes: 8,
		ElapsedDisplay: "8m",
		Items:          []queries.ItemView{},
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/ready", "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "ready", body[0]["status"])
	assert.Equal(t, "2024-05-01T12:10:00Z", body[0]["ready_at"])
	f.ready.AssertExpectations(t)
}

func TestGetOrderHistory(t *testing.T) {
	f := newFixture(t)
	servedAt := time.Date(2024, 5, 1, 12, 40, 0, 0, time.UTC)
	f.history.On("Handle", mock.Anything, mock.MatchedBy(func(query queries.GetOrderHistoryQuery) bool {
		return query.Limit() == 5
	})).Return([]queries.OrderView{{
		ID:             kernel.NewUUID(),
		OrderNumber:    "B-200",
		Status:         order.Served,
		Priority:       order.Normal,
		CreatedAt:      servedAt.Add(-40 * time.Minute),
		ServedAt:       &servedAt,
		ElapsedMinutes: 40,
		ElapsedDisplay: "40m",
		Items:          []queries.ItemView{},
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/history?from=2024-05-01T00:00:00Z&q=b-2&limit=5", "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "served", body[0]["status"])
	assert.Equal(t, "40m", body[0]["elapsed_display"])
	assert.Equal(t, "2024-05-01T12:40:00Z", body[0]["served_at"])
	f.history.AssertExpectations(t)
}

func TestSetOrderPriority(t *testing.T) {
	f := newFixture(t)
	orderID := kernel.NewUUID()
	f.priority.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetOrderPriorityCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.Priority() == order.Rush && cmd.Actor() == "chef-1"
	})).Return(order.Preparing, nil).Once()

	rec := f.do(http.MethodPut, "/api/v1/orders/"+orderID.String()+"/priority", `{"priority":"rush"}`,
		map[string]string{kdshttp.ActorHeader: "chef-1"})

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"success": true, "status": "preparing"}, decode(t, rec))
	f.priority.AssertExpectations(t)
}

func TestGetOrderCounts(t *testing.T) {
	f := newFixture(t)
	f.counts.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderCounts{order.Pending: 2, order.Preparing: 1, order.Ready: 4}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/counts", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.InDelta(t, 3, body["active"], 0)
	assert.InDelta(t, 4, body["ready"], 0)
	assert.InDelta(t, 0, body["paid"], 0)
}

func TestCreateStation_RespondsWithStoredStation(t *testing.T) {
	f := newFixture(t)
	stationID := kernel.NewUUID()
	f.saver.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SaveStationCommand) bool {
		attrs := cmd.Attributes()
		return cmd.StationID() == nil && attrs.Code == "grl" && attrs.IsActive
	})).Return(stationID, nil).Once()
	f.stations.On("Handle", mock.Anything, mock.Anything).Return([]queries.StationView{
		{ID: kernel.NewUUID(), Name: "Bar", Code: "BAR", Color: "#6b7280"},
		{ID: stationID, Name: "Grill", Code: "GRL", Color: "#6b7280", IsActive: true},
	}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/stations", `{"name":"Grill","code":"grl"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, stationID.String(), body["id"])
	assert.Equal(t, "GRL", body["code"])
}

func TestCreateStation_DuplicateCode(t *testing.T) {
	f := newFixture(t)
	f.saver.On("Handle", mock.Anything, mock.Anything).
		Return(kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("station code", errors.New("station code already exists"))).Once()

	rec := f.do(http.MethodPost, "/api/v1/stations", `{"name":"Grill","code":"GRL"}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "already exists")
}

func TestDeleteStation(t *testing.T) {
	f := newFixture(t)
	stationID := kernel.NewUUID()
	f.deleter.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.DeleteStationCommand) bool {
		return cmd.StationID().IsEqual(stationID) && cmd.HubID().IsEqual(f.hubID)
	})).Return(nil).Once()

	rec := f.do(http.MethodDelete, "/api/v1/stations/"+stationID.String(), "", nil)

	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Empty(t, rec.Body.String())
	f.deleter.AssertExpectations(t)
}

func TestGetSettings(t *testing.T) {
	f := newFixture(t)
	values := settings.Defaults()
	values.AutoBumpEnabled = true
	f.readConfig.On("Handle", mock.Anything, mock.Anything).Return(values, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/settings", "", nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, true, body["auto_bump_enabled"])
	assert.InDelta(t, 15, body["warning_time_minutes"], 0)
	f.readConfig.AssertExpectations(t)
}

func TestSetNumberSetting(t *testing.T) {
	t.Run("unknown name is rejected before the use case", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodPost, "/api/v1/settings/number", `{"name":"volume","value":"3"}`, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		f.settings.AssertNotCalled(t, "SetNumber", mock.Anything, mock.Anything)
	})

	t.Run("value is parsed", func(t *testing.T) {
		f := newFixture(t)
		values := settings.Defaults()
		values.WarningTimeMinutes = 20
		f.settings.On("SetNumber", mock.Anything, mock.MatchedBy(func(cmd commands.SetNumberSettingCommand) bool {
			return cmd.Field() == settings.WarningTimeMinutes && cmd.Value() == 20
		})).Return(values, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/settings/number", `{"name":"warning_time_minutes","value":"20"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.InDelta(t, 20, decode(t, rec)["warning_time_minutes"], 0)
	})
}

func TestInternalErrorsAreNotExposed(t *testing.T) {
	f := newFixture(t)
	f.counts.On("Handle", mock.Anything, mock.Anything).
		Return(queries.OrderCounts(nil), errors.New("pq: connection refused")).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/counts", "", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)
	f.counts.On("Handle", mock.Anything, mock.Anything).Return(queries.OrderCounts{}, nil).Once()
	f.do(http.MethodGet, "/api/v1/orders/counts", "", nil)

	rec := f.do(http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `kds_http_requests_total{method="GET",path="/api/v1/orders/counts",status="200"} 1`)
}
