// Package order defines the order aggregate created by a successful checkout.
package order

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// IDPrefix is the human-readable prefix of every order identifier.
const IDPrefix = "ORD-"

// Line is a snapshot of one product/quantity pairing within an order.
// Unit price is captured from the catalog at creation time.
type Line struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	LineTotal   decimal.Decimal
}

// NewLine creates an order line, computing the line total from quantity and unit price.
func NewLine(productID, productName string, unitPrice decimal.Decimal, quantity int) (Line, error) {
	if productID == "" {
		return Line{}, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return Line{}, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return Line{}, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return Line{
		ProductID:   productID,
		ProductName: productName,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		LineTotal:   unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Order is a persisted record of a completed checkout.
// Orders are created exactly once and never updated or deleted.
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Lines         []Line
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
}

// New creates an order for the given customer and lines.
// The total is the arithmetic sum of line totals and is fixed at creation.
func New(customerName, customerEmail string, lines []Line) (*Order, error) {
	customerName = strings.TrimSpace(customerName)
	customerEmail = strings.TrimSpace(customerEmail)

	if customerName == "" || customerEmail == "" {
		return nil, shared.ErrMissingCustomerInfo
	}
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	total := decimal.Zero
	items := make([]Line, len(lines))
	for i, line := range lines {
		total = total.Add(line.LineTotal)
		items[i] = line
	}

	return &Order{
		ID:            NewID(),
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		Lines:         items,
		TotalAmount:   total,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// NewID generates an order identifier: the ORD- prefix followed by 8 uppercase
// hexadecimal characters drawn from a v4 UUID.
func NewID() string {
	id := uuid.New()
	return IDPrefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}
