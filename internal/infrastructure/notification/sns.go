// Package notification provides order-confirmation publishers.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/storefront/backend/internal/application/checkout"
	infraconfig "github.com/storefront/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Ensure SNSPublisher implements checkout.Sender
var _ checkout.Sender = (*SNSPublisher)(nil)

// SNSPublisher sends order confirmations to an AWS SNS topic.
// Each confirmation is a single publish call with no retry; the publish is
// bounded by the configured timeout so a slow endpoint cannot stall checkout.
type SNSPublisher struct {
	client   *sns.Client
	topicARN string
	timeout  time.Duration
	logger   *zap.Logger
}

// SNSPublisherOption is a functional option for configuring SNSPublisher
type SNSPublisherOption func(*SNSPublisher)

// WithLogger sets a custom logger for SNSPublisher
func WithLogger(logger *zap.Logger) SNSPublisherOption {
	return func(p *SNSPublisher) {
		p.logger = logger
	}
}

// NewSNSPublisher creates an SNSPublisher from configuration.
// It works against AWS SNS or any SNS-compatible endpoint.
func NewSNSPublisher(cfg *infraconfig.NotificationConfig, opts ...SNSPublisherOption) (*SNSPublisher, error) {
	if cfg == nil {
		return nil, errors.New("notification configuration is required")
	}
	if !cfg.Enabled() {
		return nil, errors.New("notification topic ARN is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := sns.NewFromConfig(awsCfg, func(o *sns.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publisher := &SNSPublisher{
		client:   client,
		topicARN: cfg.TopicARN,
		timeout:  cfg.PublishTimeout,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(publisher)
	}

	if publisher.timeout == 0 {
		publisher.timeout = 5 * time.Second
	}

	return publisher, nil
}

// Publish sends the confirmation to the configured topic.
func (p *SNSPublisher) Publish(ctx context.Context, msg checkout.ConfirmationMessage) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(msg.Subject),
		Message:  aws.String(msg.Body),
	})
	if err != nil {
		return fmt.Errorf("publish to topic %s: %w", p.topicARN, err)
	}

	p.logger.Debug("Order confirmation published", zap.String("subject", msg.Subject))
	return nil
}
