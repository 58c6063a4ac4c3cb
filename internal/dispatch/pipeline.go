package dispatch

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/givecircle/dispatch-api/internal/mailer"
	"github.com/givecircle/dispatch-api/internal/metrics"
	"github.com/givecircle/dispatch-api/internal/models"
	"github.com/givecircle/dispatch-api/internal/repository"
)

type Status string

const (
	// StatusDelivered means the gateway accepted the email and the
	// notification row was updated.
	StatusDelivered Status = "delivered"
	// StatusRejected means the gateway refused the email. The notification
	// row is left untouched.
	StatusRejected Status = "rejected"
	// StatusSuppressed means the recipient's preferences ruled the email
	// out before any send was attempted.
	StatusSuppressed Status = "suppressed"
)

// Result is the terminal outcome of one pipeline run. Reason is set for
// suppressed outcomes.
type Result struct {
	Status Status
	Reason string
}

// Dispatcher runs the delivery pipeline for one notification.
type Dispatcher interface {
	Dispatch(ctx context.Context, notif models.Notification) (Result, error)
}

// Pipeline resolves the recipient, applies their preferences, renders the
// email and hands it to the sender. Every run is a single best-effort
// attempt; redelivery is the caller's concern.
type Pipeline struct {
	profiles      repository.ProfileRepository
	preferences   repository.PreferenceRepository
	templates     repository.TemplateRepository
	notifications repository.NotificationRepository
	sender        mailer.Sender
	appName       string
	logger        zerolog.Logger
}

func NewPipeline(
	profiles repository.ProfileRepository,
	preferences repository.PreferenceRepository,
	templates repository.TemplateRepository,
	notifications repository.NotificationRepository,
	sender mailer.Sender,
	appName string,
	logger zerolog.Logger,
) *Pipeline {
	return &Pipeline{
		profiles:      profiles,
		preferences:   preferences,
		templates:     templates,
		notifications: notifications,
		sender:        sender,
		appName:       appName,
		logger:        logger.With().Str("component", "dispatch").Logger(),
	}
}

func (p *Pipeline) Dispatch(ctx context.Context, notif models.Notification) (Result, error) {
	start := time.Now()
	result, err := p.run(ctx, notif)
	metrics.DispatchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.DispatchOutcomes.WithLabelValues("error").Inc()
		return Result{}, err
	}
	metrics.DispatchOutcomes.WithLabelValues(string(result.Status)).Inc()
	return result, nil
}

func (p *Pipeline) run(ctx context.Context, notif models.Notification) (Result, error) {
	logger := p.logger.With().
		Str("notification_id", notif.ID).
		Str("category", string(notif.Category)).
		Logger()

	profile, err := p.profiles.GetByID(ctx, notif.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, &NotFoundError{Resource: "profile", UserID: notif.UserID}
	}
	if err != nil {
		return Result{}, errors.Wrap(err, "load profile")
	}
	recipient := strings.TrimSpace(profile.EmailAddress())
	if recipient == "" {
		return Result{}, &NotFoundError{Resource: "email", UserID: notif.UserID}
	}

	prefs, err := p.preferences.GetByUserID(ctx, notif.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, &NotFoundError{Resource: "preferences", UserID: notif.UserID}
	}
	if err != nil {
		return Result{}, errors.Wrap(err, "load preferences")
	}

	if decision := EvaluateGate(prefs, notif.Category); !decision.Allowed {
		logger.Info().Str("reason", decision.Reason).Msg("email suppressed by preferences")
		return Result{Status: StatusSuppressed, Reason: decision.Reason}, nil
	}

	tmpl, err := p.templates.GetByCategory(ctx, notif.Category)
	if errors.Is(err, sql.ErrNoRows) {
		tmpl = FallbackTemplate(notif)
	} else if err != nil {
		return Result{}, errors.Wrap(err, "load template")
	}

	rendered := RenderTemplate(tmpl, BuildVars(notif, profile, p.appName))

	err = p.sender.Send(ctx, mailer.Email{
		To:      recipient,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err != nil {
		var deliveryErr *mailer.DeliveryError
		if errors.As(err, &deliveryErr) {
			logger.Warn().
				Int("status_code", deliveryErr.StatusCode).
				Msg("mail gateway rejected email")
			return Result{Status: StatusRejected}, nil
		}
		return Result{}, errors.Wrap(err, "send email")
	}

	if err := p.notifications.MarkEmailed(ctx, notif.ID, time.Now().UTC()); err != nil {
		logger.Error().Err(err).Msg("email sent but delivery could not be recorded")
		return Result{}, errors.Wrap(err, "record delivery")
	}

	logger.Info().Str("sender", p.sender.String()).Msg("email dispatched")
	return Result{Status: StatusDelivered}, nil
}
