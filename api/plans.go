package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/socialynx/backend/pkg/entitlement"
)

// listPlans returns the purchasable plan catalog in display order.
func (h *handlers) listPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"plans": h.deps.Catalog.List(r.Context()),
	})
}

// subscriptionStatus returns the user's resolved entitlement. Reading
// re-evaluates expiry, so a lapsed subscription reads as free.
func (h *handlers) subscriptionStatus(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	ent, err := h.deps.Entitlements.Status(r.Context(), userID)
	if err != nil {
		if errors.Is(err, entitlement.ErrMissingUserID) {
			writeError(w, http.StatusBadRequest, "Invalid payload")
			return
		}
		h.internalError(w, r, "Failed to resolve subscription", err)
		return
	}

	writeJSON(w, http.StatusOK, ent)
}
