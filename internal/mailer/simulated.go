package mailer

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/givecircle/dispatch-api/internal/metrics"
)

// SimulatedSender stands in for the mail gateway when no API key is
// configured. It performs no network I/O and reports every send as
// delivered, so local environments exercise the full pipeline.
type SimulatedSender struct {
	from   string
	logger zerolog.Logger
}

func NewSimulatedSender(from string, logger zerolog.Logger) *SimulatedSender {
	return &SimulatedSender{
		from:   from,
		logger: logger.With().Str("sender", "simulated").Logger(),
	}
}

func (s *SimulatedSender) Send(_ context.Context, email Email) error {
	metrics.EmailDeliveries.WithLabelValues("simulated", "sent").Inc()
	s.logger.Info().
		Str("mode", "simulated").
		Str("message_id", uuid.New().String()).
		Str("from", s.from).
		Str("to", email.To).
		Str("subject", email.Subject).
		Msg("email send simulated, no gateway credential configured")
	return nil
}

func (s *SimulatedSender) String() string {
	return "simulated"
}
