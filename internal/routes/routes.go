package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/givecircle/dispatch-api/internal/handlers"
	"github.com/givecircle/dispatch-api/internal/middleware"
)

// NewRouter sets up the API routes
func NewRouter(webhook *handlers.WebhookHandler, notifications *handlers.NotificationHandler, webhookSecret, jwtSecret string) *mux.Router {
	router := mux.NewRouter()

	// Health check and metrics
	router.HandleFunc("/health", handlers.HealthCheck).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Row-change webhook fired by the database on notification inserts
	router.Handle("/webhooks/notifications",
		middleware.WebhookSecret(webhookSecret)(http.HandlerFunc(webhook.Receive)),
	).Methods(http.MethodPost)

	// Operator endpoints
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTAuth(jwtSecret))
	api.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{notificationID}/dispatch", notifications.Dispatch).Methods(http.MethodPost)

	return router
}
