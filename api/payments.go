package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/socialynx/backend/pkg/catalog"
	"github.com/socialynx/backend/pkg/logger"
	"github.com/socialynx/backend/pkg/payment"
	"github.com/socialynx/backend/pkg/qrcode"
)

type createPaymentRequest struct {
	UserID    string `json:"userId"`
	Plan      string `json:"plan"`
	UserEmail string `json:"userEmail"`
}

type createPaymentResponse struct {
	ConfirmationURL string `json:"confirmationUrl"`
	PaymentID       string `json:"paymentId"`
}

// createPayment starts a hosted checkout session for a plan purchase.
func (h *handlers) createPayment(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	link, err := h.deps.Payments.CreateSession(r.Context(), req.UserID, req.Plan, req.UserEmail)
	switch {
	case errors.Is(err, payment.ErrMissingUserID), errors.Is(err, catalog.ErrPlanNotFound):
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	case errors.Is(err, payment.ErrProviderNotConfigured):
		writeError(w, http.StatusServiceUnavailable, "Payments are not configured")
		return
	case err != nil:
		h.internalError(w, r, "Failed to create payment", err)
		return
	}

	writeJSON(w, http.StatusOK, createPaymentResponse{
		ConfirmationURL: link.ConfirmationURL,
		PaymentID:       link.PaymentID,
	})
}

// paymentQR renders the session's checkout link as a PNG QR code so a
// payment started on one device can be completed on another.
func (h *handlers) paymentQR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	session, err := h.deps.Payments.Session(r.Context(), id)
	if err != nil {
		if errors.Is(err, payment.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, "Payment not found")
			return
		}
		h.internalError(w, r, "Failed to load payment", err)
		return
	}
	if session.ConfirmationURL == "" {
		writeError(w, http.StatusNotFound, "Payment has no checkout link")
		return
	}

	png, err := qrcode.Generate(session.ConfirmationURL, qrcode.DefaultSize)
	if err != nil {
		h.internalError(w, r, "Failed to render QR code", err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// paymentWebhook ingests provider status notifications. A 2xx tells the
// provider to stop redelivering, so only a durable processing failure
// returns 5xx.
func (h *handlers) paymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if h.deps.WebhookSecret != "" {
		if err := payment.VerifySignature(h.deps.WebhookSecret, body, r.Header, payment.DefaultSignatureMaxAge); err != nil {
			h.log.WarnContext(r.Context(), "rejected webhook with bad signature", logger.Error(err))
			writeError(w, http.StatusUnauthorized, "Invalid signature")
			return
		}
	}

	var n payment.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	if err := h.deps.Payments.HandleNotification(r.Context(), n); err != nil {
		if errors.Is(err, payment.ErrMalformedNotification) {
			writeError(w, http.StatusBadRequest, "Invalid payload")
			return
		}
		h.internalError(w, r, "Webhook error", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}
