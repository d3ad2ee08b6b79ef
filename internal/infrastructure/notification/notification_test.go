package notification

import (
	"context"
	"testing"
	"time"

	"github.com/storefront/backend/internal/application/checkout"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopSender(t *testing.T) {
	sender := NewNoopSender()

	err := sender.Publish(context.Background(), checkout.ConfirmationMessage{
		Subject: "Order Confirmed: ORD-00000000",
		Body:    "irrelevant",
	})
	assert.NoError(t, err)
}

func TestNewSNSPublisher(t *testing.T) {
	t.Run("requires configuration", func(t *testing.T) {
		_, err := NewSNSPublisher(nil)
		assert.Error(t, err)
	})

	t.Run("requires a topic ARN", func(t *testing.T) {
		_, err := NewSNSPublisher(&config.NotificationConfig{Region: "us-east-1"})
		assert.Error(t, err)
	})

	t.Run("builds a publisher with defaults", func(t *testing.T) {
		p, err := NewSNSPublisher(&config.NotificationConfig{
			TopicARN:  "arn:aws:sns:us-east-1:123456789012:orders",
			AccessKey: "test",
			SecretKey: "test",
			Endpoint:  "http://localhost:4566",
		})
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, p.timeout)
		assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:orders", p.topicARN)
	})

	t.Run("honors the configured publish timeout", func(t *testing.T) {
		p, err := NewSNSPublisher(&config.NotificationConfig{
			TopicARN:       "arn:aws:sns:us-east-1:123456789012:orders",
			PublishTimeout: 2 * time.Second,
		})
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, p.timeout)
	})
}
