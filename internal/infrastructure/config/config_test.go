package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storefront-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "orders.db", cfg.Database.Path)
	assert.Equal(t, DefaultSessionSecret, cfg.Session.Secret)
	assert.Equal(t, "us-east-1", cfg.Notification.Region)
	assert.Equal(t, 5*time.Second, cfg.Notification.PublishTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Notification.Enabled())
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_DATABASE_PATH", "/tmp/test-orders.db")
	t.Setenv("STOREFRONT_NOTIFICATION_TOPIC_ARN", "arn:aws:sns:us-east-1:123456789012:orders")
	t.Setenv("STOREFRONT_APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test-orders.db", cfg.Database.Path)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.Notification.Enabled())
}

func TestValidateProduction(t *testing.T) {
	t.Run("rejects missing session secret", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "session.secret")
	})

	t.Run("rejects short session secret", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_SESSION_SECRET", "too-short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("accepts strong session secret", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "production")
		t.Setenv("STOREFRONT_SESSION_SECRET", strings.Repeat("s", 48))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestNotificationEnabled(t *testing.T) {
	n := NotificationConfig{}
	assert.False(t, n.Enabled())

	n.TopicARN = "   "
	assert.False(t, n.Enabled())

	n.TopicARN = "arn:aws:sns:us-east-1:123456789012:orders"
	assert.True(t, n.Enabled())
}
