package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/order"
)

// ConfirmationMessage is the human-readable order confirmation sent to the
// notification destination.
type ConfirmationMessage struct {
	Subject string
	Body    string
}

// NewConfirmationMessage composes the fixed-format confirmation for an order:
// subject "Order Confirmed: <order_id>", body with greeting, order id, email,
// itemized lines, total to two decimal places, and the UTC creation time.
func NewConfirmationMessage(o *order.Order) ConfirmationMessage {
	items := make([]string, len(o.Lines))
	for i, line := range o.Lines {
		items[i] = fmt.Sprintf("- %s x%d = $%s", line.ProductName, line.Quantity, line.LineTotal.StringFixed(2))
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour order is confirmed.\n\nOrder ID: %s\nEmail: %s\nItems:\n%s\n\nTotal: $%s\nTime: %s\n\nThanks!",
		o.CustomerName,
		o.ID,
		o.CustomerEmail,
		strings.Join(items, "\n"),
		o.TotalAmount.StringFixed(2),
		o.CreatedAt.UTC().Format(time.RFC3339),
	)

	return ConfirmationMessage{
		Subject: "Order Confirmed: " + o.ID,
		Body:    body,
	}
}
