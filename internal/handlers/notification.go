package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/givecircle/dispatch-api/internal/dispatch"
	"github.com/givecircle/dispatch-api/internal/repository"
)

type NotificationHandler struct {
	repo       repository.NotificationRepository
	dispatcher dispatch.Dispatcher
	logger     zerolog.Logger
}

func NewNotificationHandler(repo repository.NotificationRepository, dispatcher dispatch.Dispatcher, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger.With().Str("handler", "notification").Logger(),
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	limit := 25
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := h.repo.ListRecentByUser(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list notifications")
		http.Error(w, "Failed to list notifications", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": notifications,
	})
}

// Dispatch re-runs the delivery pipeline for a stored notification. This is
// the manual redelivery lever for operators; the pipeline itself never
// retries.
func (h *NotificationHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	notifID := strings.TrimSpace(mux.Vars(r)["notificationID"])
	if notifID == "" {
		http.Error(w, "Notification ID is required", http.StatusBadRequest)
		return
	}

	notif, err := h.repo.GetByID(r.Context(), notifID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "Notification not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Str("notification_id", notifID).Msg("failed to load notification")
		http.Error(w, "Failed to load notification", http.StatusInternalServerError)
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), notif)
	if err != nil {
		writeDispatchError(w, h.logger, err)
		return
	}
	writeResult(w, result)
}
