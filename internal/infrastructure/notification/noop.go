package notification

import (
	"context"

	"github.com/storefront/backend/internal/application/checkout"
)

// Ensure NoopSender implements checkout.Sender
var _ checkout.Sender = (*NoopSender)(nil)

// NoopSender discards confirmations. It is used when no notification
// destination is configured, so local and offline operation is never blocked
// by absent external configuration.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Publish always succeeds silently
func (s *NoopSender) Publish(ctx context.Context, msg checkout.ConfirmationMessage) error {
	return nil
}
