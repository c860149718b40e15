package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
	"github.com/imfops/gadget-api/internal/services"
)

// GadgetUpdater defines the interface that the service must implement.
type GadgetUpdater interface {
	Update(ctx context.Context, gadgetID uuid.UUID, name, description, status *string) (*models.GadgetDB, error)
}

// UpdateGadgetRequest represents the JSON body for a partial gadget update.
// Absent fields are untouched; pointer fields distinguish "not provided"
// from an explicit empty string.
// swagger:model UpdateGadgetRequest
type UpdateGadgetRequest struct {
	// Display name
	Name *string `json:"name"`

	// Description
	Description *string `json:"description"`

	// Status (case-insensitive)
	Status *string `json:"status"`
}

// UpdateGadgetErrorResponse represents an error response for gadget update
// swagger:model UpdateGadgetErrorResponse
type UpdateGadgetErrorResponse struct {
	// Error message
	// default: Gadget not found
	Message string `json:"message"`
}

// NewUpdateGadgetHandler returns an HTTP handler applying a partial update.
// @Summary Update a gadget
// @Description Applies the provided fields; absent fields are untouched
// @Tags gadgets
// @Accept json
// @Produce json
// @Param gadgetID path string true "Gadget id"
// @Param updateGadgetRequest body handlers.UpdateGadgetRequest true "Partial update"
// @Success 200 {object} models.GadgetDB "Updated gadget"
// @Failure 400 {object} handlers.UpdateGadgetErrorResponse "Unknown status or terminal gadget"
// @Failure 401 {object} handlers.UpdateGadgetErrorResponse "Not authorized"
// @Failure 403 {object} handlers.UpdateGadgetErrorResponse "Role not permitted"
// @Failure 404 {object} handlers.UpdateGadgetErrorResponse "Gadget not found"
// @Failure 500 {object} handlers.UpdateGadgetErrorResponse "Internal server error"
// @Router /gadgets/{gadgetID} [patch]
// @Security BearerAuth
func NewUpdateGadgetHandler(svc GadgetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		gadgetID, ok := gadgetIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateGadgetErrorResponse{
				Message: "Gadget not found",
			})
			return
		}

		var req UpdateGadgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateGadgetErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		gadget, err := svc.Update(r.Context(), gadgetID, req.Name, req.Description, req.Status)
		if err != nil {
			var terminalErr *services.TerminalStateError
			switch {
			case errors.Is(err, services.ErrGadgetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateGadgetErrorResponse{
					Message: "Gadget not found",
				})
			case errors.Is(err, services.ErrInvalidStatus):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateGadgetErrorResponse{
					Message: "Invalid status",
				})
			case errors.As(err, &terminalErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateGadgetErrorResponse{
					Message: terminalErr.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateGadgetErrorResponse{
					Message: "Failed to update gadget",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gadget)
	}
}
