package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	StatusPendingPayment = "pending_payment"
	StatusPending        = "pending"
	StatusAccepted       = "accepted"
	StatusRejected       = "rejected"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Order struct {
	ID            int64      `json:"id"`
	OrderID       string     `json:"order_id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Items         OrderItems `json:"items"`
	Total         int64      `json:"total"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	Location      string     `json:"location,omitempty"`
	TgID          int64      `json:"tg_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	RejectedAt    *time.Time `json:"rejected_at,omitempty"`
	Notified      bool       `json:"notified"`
}

type OrderItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// OrderItems lives in a JSONB column written by the web front-end, which has
// stored items both as a list of {name, qty} records and as a name->qty map
// over time. Both forms must decode.
type OrderItems []OrderItem

func (it *OrderItems) UnmarshalJSON(data []byte) error {
	var list []struct {
		Name     string `json:"name"`
		Qty      int    `json:"qty"`
		Quantity int    `json:"quantity"`
	}
	if err := json.Unmarshal(data, &list); err == nil {
		items := make(OrderItems, 0, len(list))
		for _, entry := range list {
			qty := entry.Qty
			if qty == 0 {
				qty = entry.Quantity
			}
			items = append(items, OrderItem{Name: entry.Name, Qty: qty})
		}
		*it = items
		return nil
	}

	var byName map[string]int
	if err := json.Unmarshal(data, &byName); err != nil {
		return fmt.Errorf("unmarshal order items: %w", err)
	}

	items := make(OrderItems, 0, len(byName))
	for name, qty := range byName {
		items = append(items, OrderItem{Name: name, Qty: qty})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	*it = items
	return nil
}

func (it *OrderItems) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*it = nil
		return nil
	case []byte:
		return it.UnmarshalJSON(v)
	case string:
		return it.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported items column type %T", src)
	}
}
