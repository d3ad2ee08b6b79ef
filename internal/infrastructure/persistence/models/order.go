// Package models contains GORM persistence models and their domain mappings.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/order"
)

// OrderModel is the persistence model for the Order aggregate.
// Line items are stored as a JSON document in items_json.
type OrderModel struct {
	OrderID       string          `gorm:"column:order_id;type:varchar(32);primaryKey"`
	CustomerName  string          `gorm:"column:customer_name;type:varchar(200);not null"`
	CustomerEmail string          `gorm:"column:customer_email;type:varchar(320);not null"`
	ItemsJSON     string          `gorm:"column:items_json;type:text;not null"`
	TotalAmount   decimal.Decimal `gorm:"column:total_amount;type:decimal(18,2);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at;not null"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// lineRecord is the JSON shape of one line item inside items_json.
type lineRecord struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() (*order.Order, error) {
	var records []lineRecord
	if err := json.Unmarshal([]byte(m.ItemsJSON), &records); err != nil {
		return nil, fmt.Errorf("decode items for order %s: %w", m.OrderID, err)
	}

	lines := make([]order.Line, len(records))
	for i, r := range records {
		lines[i] = order.Line{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			UnitPrice:   r.UnitPrice,
			Quantity:    r.Quantity,
			LineTotal:   r.LineTotal,
		}
	}

	return &order.Order{
		ID:            m.OrderID,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		Lines:         lines,
		TotalAmount:   m.TotalAmount,
		CreatedAt:     m.CreatedAt.UTC(),
	}, nil
}

// OrderModelFromDomain creates a persistence model from a domain Order.
func OrderModelFromDomain(o *order.Order) (*OrderModel, error) {
	records := make([]lineRecord, len(o.Lines))
	for i, line := range o.Lines {
		records[i] = lineRecord{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
		}
	}

	items, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode items for order %s: %w", o.ID, err)
	}

	return &OrderModel{
		OrderID:       o.ID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		ItemsJSON:     string(items),
		TotalAmount:   o.TotalAmount,
		CreatedAt:     o.CreatedAt,
	}, nil
}
