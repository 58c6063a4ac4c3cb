package mailer

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/givecircle/dispatch-api/internal/config"
)

// Email is one outbound message, addressed and fully rendered. The sender
// supplies the from address.
type Email struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers rendered emails. The active implementation is chosen once
// at startup and shared by all requests.
type Sender interface {
	Send(ctx context.Context, email Email) error
	String() string
}

// NewSender picks the gateway sender when an API key is configured and the
// simulated sender otherwise.
func NewSender(cfg config.MailConfig, logger zerolog.Logger) Sender {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return NewSimulatedSender(cfg.From, logger)
	}
	return NewGatewaySender(cfg, logger)
}
