package mailer

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/givecircle/dispatch-api/internal/config"
)

func TestNewSender_ModeSelection(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		mode   string
	}{
		{name: "no key picks simulation", apiKey: "", mode: "simulated"},
		{name: "whitespace key picks simulation", apiKey: "   ", mode: "simulated"},
		{name: "key picks gateway", apiKey: "re_test_123", mode: "gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.MailConfig{
				From:       "GiveCircle <notifications@givecircle.org>",
				GatewayURL: "https://api.resend.com/emails",
				APIKey:     tt.apiKey,
			}

			sender := NewSender(cfg, zerolog.Nop())

			assert.Equal(t, tt.mode, sender.String())
		})
	}
}

func TestSimulatedSender_Send(t *testing.T) {
	sender := NewSimulatedSender("GiveCircle <notifications@givecircle.org>", zerolog.Nop())

	err := sender.Send(context.Background(), Email{
		To:      "dana@example.com",
		Subject: "New donation",
		Text:    "Hi Dana",
	})

	assert.NoError(t, err)
}
