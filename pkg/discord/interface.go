package discord

import (
	"context"
	"fmt"
	"strings"

	"jwt-builder/pkg/log"
)

// IDiscord reports service errors to a Discord webhook.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

func parseWebhookURL(webhookURL string) (id, token string, err error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if !strings.HasPrefix(webhookURL, webhookURLPrefix) {
		return "", "", fmt.Errorf("discord: invalid webhook URL format")
	}
	rest := strings.TrimPrefix(webhookURL, webhookURLPrefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("discord: webhook URL must be .../webhooks/{id}/{token}")
	}
	return parts[0], parts[1], nil
}

// New builds a client from a full webhook URL.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	return newImpl(l, id, token, webhookURLTemplate, DefaultConfig())
}

// NewFromParts builds a client from a webhook id and token.
func NewFromParts(l log.Logger, id, token string) (IDiscord, error) {
	return newImpl(l, id, token, webhookURLTemplate, DefaultConfig())
}
