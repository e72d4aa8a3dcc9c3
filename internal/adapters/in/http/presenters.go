package http

import (
	"kds/internal/core/application/usecases/queries"
	"kds/internal/core/domain/model/settings"
	"kds/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toOrders(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, 0, len(views))
	for _, v := range views {
		out = append(out, toOrder(v))
	}
	return out
}

func toOrder(v queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, 0, len(v.Items))
	for _, item := range v.Items {
		var stationID *openapi_types.UUID
		if item.StationID != nil {
			id := item.StationID.Bytes()
			stationID = &id
		}
		items = append(items, servers.OrderItem{
			Id:          item.ID.Bytes(),
			ProductId:   optional(item.ProductID),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Modifiers:   item.Modifiers,
			Notes:       optional(item.Notes),
			StationId:   stationID,
			Status:      servers.ItemStatus(item.Status.String()),
			StartedAt:   item.StartedAt,
			ReadyAt:     item.ReadyAt,
		})
	}

	return servers.Order{
		Id:             v.ID.Bytes(),
		SaleId:         optional(v.SaleID),
		OrderNumber:    v.OrderNumber,
		TableNumber:    optional(v.TableNumber),
		Notes:          optional(v.Notes),
		Status:         servers.OrderStatus(v.Status.String()),
		Priority:       servers.Priority(v.Priority.String()),
		CreatedAt:      v.CreatedAt,
		AcceptedAt:     v.AcceptedAt,
		ReadyAt:        v.ReadyAt,
		ServedAt:       v.ServedAt,
		PaidAt:         v.PaidAt,
		CancelledAt:    v.CancelledAt,
		CancelReason:   optional(v.CancelReason),
		ElapsedMinutes: v.ElapsedMinutes,
		ElapsedDisplay: v.ElapsedDisplay,
		StatusClass:    servers.OrderStatusClass(v.StatusClass),
		Items:          items,
	}
}

func toStation(v queries.StationView) servers.Station {
	return servers.Station{
		Id:        v.ID.Bytes(),
		Name:      v.Name,
		Code:      v.Code,
		Color:     v.Color,
		SortOrder: v.SortOrder,
		IsActive:  v.IsActive,
	}
}

func toSettings(v settings.Values) servers.Settings {
	return servers.Settings{
		AutoAcceptOrders:     v.AutoAcceptOrders,
		ShowTimer:            v.ShowTimer,
		WarningTimeMinutes:   v.WarningTimeMinutes,
		CriticalTimeMinutes:  v.CriticalTimeMinutes,
		ItemsPerPage:         v.ItemsPerPage,
		AutoRefreshSeconds:   v.AutoRefreshSeconds,
		SoundEnabled:         v.SoundEnabled,
		SoundOnNewOrder:      v.SoundOnNewOrder,
		SoundOnRush:          v.SoundOnRush,
		AutoBumpEnabled:      v.AutoBumpEnabled,
		AutoBumpDelaySeconds: v.AutoBumpDelaySeconds,
		ColorCodingEnabled:   v.ColorCodingEnabled,
	}
}

func toPatch(p servers.SettingsPatch) settings.Patch {
	return settings.Patch{
		AutoAcceptOrders:     p.AutoAcceptOrders,
		ShowTimer:            p.ShowTimer,
		WarningTimeMinutes:   p.WarningTimeMinutes,
		CriticalTimeMinutes:  p.CriticalTimeMinutes,
		ItemsPerPage:         p.ItemsPerPage,
		AutoRefreshSeconds:   p.AutoRefreshSeconds,
		SoundEnabled:         p.SoundEnabled,
		SoundOnNewOrder:      p.SoundOnNewOrder,
		SoundOnRush:          p.SoundOnRush,
		AutoBumpEnabled:      p.AutoBumpEnabled,
		AutoBumpDelaySeconds: p.AutoBumpDelaySeconds,
		ColorCodingEnabled:   p.ColorCodingEnabled,
	}
}

// optional omits empty strings from responses.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefSlice(s *[]string) []string {
	if s == nil {
		return nil
	}
	return *s
}
