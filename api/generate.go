package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/socialynx/backend/pkg/generation"
	"github.com/socialynx/backend/pkg/logger"
	"github.com/socialynx/backend/pkg/quota"
)

type generateRequest struct {
	UserID string `json:"userId"`
	Prompt string `json:"prompt"`
	Type   string `json:"type"`
	Tone   string `json:"tone"`
	Length string `json:"length"`
}

// generate runs the quota-gated content generation flow. The quota unit
// is consumed only after the provider returns a result, so failed calls
// never cost the user a free generation.
func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx := r.Context()

	ent, err := h.deps.Entitlements.Status(ctx, req.UserID)
	if err != nil {
		h.internalError(w, r, "Failed to resolve subscription", err)
		return
	}

	remaining, err := h.deps.Quota.Remaining(ctx, req.UserID, ent.IsPro())
	if err != nil {
		h.internalError(w, r, "Failed to check quota", err)
		return
	}
	if remaining == 0 {
		writeError(w, http.StatusTooManyRequests, "Daily free limit reached")
		return
	}

	result, err := h.deps.Generation.Generate(ctx, req.UserID, generation.Request{
		Prompt: req.Prompt,
		Type:   req.Type,
		Tone:   req.Tone,
		Length: req.Length,
	})
	switch {
	case errors.Is(err, generation.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	case err != nil:
		h.internalError(w, r, "Failed to generate content", err)
		return
	}

	if err := h.deps.Quota.Consume(ctx, req.UserID, ent.IsPro()); err != nil {
		// The user already has the result; losing the count is the
		// lesser failure.
		h.log.WarnContext(ctx, "failed to consume quota after generation",
			logger.UserID(req.UserID), logger.Error(err))
	}

	writeJSON(w, http.StatusOK, result)
}

// listHistory returns the user's recent generations, newest first.
func (h *handlers) listHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	records, err := h.deps.Generation.History(r.Context(), userID, 0)
	if err != nil {
		if errors.Is(err, generation.ErrMissingUserID) {
			writeError(w, http.StatusBadRequest, "Invalid payload")
			return
		}
		h.internalError(w, r, "Failed to load history", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": records})
}

// quotaStatus reports the remaining free generations for the user today.
func (h *handlers) quotaStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	ctx := r.Context()

	ent, err := h.deps.Entitlements.Status(ctx, userID)
	if err != nil {
		h.internalError(w, r, "Failed to resolve subscription", err)
		return
	}

	remaining, err := h.deps.Quota.Remaining(ctx, userID, ent.IsPro())
	if err != nil {
		h.internalError(w, r, "Failed to check quota", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"remaining": remaining,
		"limit":     h.deps.Quota.Limit(),
		"unlimited": remaining == quota.Unlimited,
	})
}
