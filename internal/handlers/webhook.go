package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/givecircle/dispatch-api/internal/dispatch"
	"github.com/givecircle/dispatch-api/internal/metrics"
	"github.com/givecircle/dispatch-api/internal/models"
)

type WebhookHandler struct {
	dispatcher dispatch.Dispatcher
	logger     zerolog.Logger
}

func NewWebhookHandler(dispatcher dispatch.Dispatcher, logger zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		dispatcher: dispatcher,
		logger:     logger.With().Str("handler", "webhook").Logger(),
	}
}

// Receive handles one row-change delivery from the database webhook. Events
// that are not an INSERT on the notifications table are acknowledged without
// work so the event system does not redeliver them.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var evt models.ChangeEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		h.ignore(w, "malformed payload")
		return
	}

	notif, ok := dispatch.ExtractNotification(evt)
	if !ok {
		h.ignore(w, fmt.Sprintf("type=%s table=%s", evt.Type, evt.Table))
		return
	}

	result, err := h.dispatcher.Dispatch(r.Context(), notif)
	if err != nil {
		writeDispatchError(w, h.logger, err)
		return
	}
	writeResult(w, result)
}

func (h *WebhookHandler) ignore(w http.ResponseWriter, detail string) {
	metrics.WebhookEventsIgnored.Inc()
	h.logger.Debug().Str("detail", detail).Msg("webhook event ignored")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ignored")
}

func writeResult(w http.ResponseWriter, result dispatch.Result) {
	switch result.Status {
	case dispatch.StatusSuppressed:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, result.Reason)
	case dispatch.StatusRejected:
		writeJSON(w, http.StatusOK, map[string]bool{"success": false})
	default:
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func writeDispatchError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var notFound *dispatch.NotFoundError
	if errors.As(err, &notFound) {
		http.Error(w, notFound.Error(), http.StatusBadRequest)
		return
	}
	logger.Error().Err(err).Msg("dispatch failed")
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
