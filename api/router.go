package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/socialynx/backend/pkg/catalog"
	"github.com/socialynx/backend/pkg/entitlement"
	"github.com/socialynx/backend/pkg/generation"
	"github.com/socialynx/backend/pkg/httpserver"
	"github.com/socialynx/backend/pkg/logger"
	"github.com/socialynx/backend/pkg/payment"
	"github.com/socialynx/backend/pkg/quota"
)

// Deps carries the services the router exposes. Catalog, Payments,
// Entitlements, Quota, and Generation are required; the rest is optional.
type Deps struct {
	Catalog      *catalog.Catalog
	Payments     *payment.Service
	Entitlements *entitlement.Service
	Quota        *quota.Tracker
	Generation   *generation.Service

	// WebhookSecret enables signature verification on the payment
	// webhook when non-empty.
	WebhookSecret string

	// HealthChecks maps dependency names to their probes.
	HealthChecks map[string]httpserver.HealthCheckFunc

	Logger *slog.Logger
}

// NewRouter builds the HTTP surface over the given services.
func NewRouter(deps Deps) chi.Router {
	if deps.Catalog == nil || deps.Payments == nil || deps.Entitlements == nil ||
		deps.Quota == nil || deps.Generation == nil {
		panic("api: all services are required")
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h := &handlers{deps: deps, log: deps.Logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(90 * time.Second))

	r.Get("/health", httpserver.HealthCheckHandler(deps.HealthChecks))

	r.Get("/plans", h.listPlans)
	r.Post("/generate", h.generate)
	r.Get("/history/{userId}", h.listHistory)

	r.Route("/payments", func(r chi.Router) {
		r.Post("/", h.createPayment)
		r.Get("/{id}/qr", h.paymentQR)
		r.Post("/webhook", h.paymentWebhook)
	})

	r.Get("/subscriptions/{userId}", h.subscriptionStatus)
	r.Get("/quota/{userId}", h.quotaStatus)

	return r
}

type handlers struct {
	deps Deps
	log  *slog.Logger
}

func (h *handlers) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.log.ErrorContext(r.Context(), msg, logger.Error(err))
	writeError(w, http.StatusInternalServerError, msg)
}
