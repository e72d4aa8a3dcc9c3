package kafka

import (
	"kds/internal/core/application/usecases/commands"
	"kds/internal/core/domain/model/kernel"
	"kds/internal/core/domain/model/order"
)

// SaleCreatedMessage is the point-of-sale event that opens a kitchen ticket.
type SaleCreatedMessage struct {
	HubID       string            `json:"hub_id"`
	SaleID      string            `json:"sale_id"`
	OrderNumber string            `json:"order_number"`
	TableNumber string            `json:"table_number"`
	Notes       string            `json:"notes"`
	Priority    string            `json:"priority"`
	Lines       []SaleCreatedLine `json:"lines"`
}

type SaleCreatedLine struct {
	ProductID   string   `json:"product_id"`
	ProductName string   `json:"product_name"`
	Quantity    int      `json:"quantity"`
	Modifiers   []string `json:"modifiers"`
	Notes       string   `json:"notes"`
	StationCode string   `json:"station_code"`
}

// toCommand validates the message. A blank priority means normal.
func (m SaleCreatedMessage) toCommand() (commands.CreateOrderCommand, error) {
	hubID, err := kernel.UUIDFromString(m.HubID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	priority := order.Normal
	if m.Priority != "" {
		if priority, err = order.PriorityFromString(m.Priority); err != nil {
			return commands.CreateOrderCommand{}, err
		}
	}

	lines := make([]commands.OrderLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, commands.OrderLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Modifiers:   l.Modifiers,
			Notes:       l.Notes,
			StationCode: l.StationCode,
		})
	}

	return commands.NewCreateOrderCommand(
		hubID, m.SaleID, m.OrderNumber, m.TableNumber, m.Notes, priority, lines, "",
	)
}
