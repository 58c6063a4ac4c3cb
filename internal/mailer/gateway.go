package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	"github.com/givecircle/dispatch-api/internal/config"
	"github.com/givecircle/dispatch-api/internal/metrics"
)

// DeliveryError reports a gateway response outside the 2xx range. It is a
// business failure, not a fault: the pipeline records no delivery and the
// request still completes.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail gateway returned %d: %s", e.StatusCode, e.Body)
}

type gatewayPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

// GatewaySender posts emails to the HTTP mail gateway with bearer-token
// auth.
type GatewaySender struct {
	client *resty.Client
	url    string
	apiKey string
	from   string
	logger zerolog.Logger
}

func NewGatewaySender(cfg config.MailConfig, logger zerolog.Logger) *GatewaySender {
	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &GatewaySender{
		client: client,
		url:    cfg.GatewayURL,
		apiKey: cfg.APIKey,
		from:   cfg.From,
		logger: logger.With().Str("sender", "gateway").Logger(),
	}
}

func (s *GatewaySender) Send(ctx context.Context, email Email) error {
	payload := gatewayPayload{
		From:    s.from,
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
		Text:    email.Text,
	}

	res, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(s.url)
	if err != nil {
		metrics.EmailDeliveries.WithLabelValues("gateway", "error").Inc()
		return errors.Wrap(err, "post to mail gateway")
	}
	if !res.IsSuccess() {
		metrics.EmailDeliveries.WithLabelValues("gateway", "rejected").Inc()
		return &DeliveryError{StatusCode: res.StatusCode(), Body: strings.TrimSpace(res.String())}
	}

	metrics.EmailDeliveries.WithLabelValues("gateway", "sent").Inc()
	s.logger.Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Msg("email accepted by gateway")
	return nil
}

func (s *GatewaySender) String() string {
	return "gateway"
}
