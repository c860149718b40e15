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

// GadgetDecommissioner defines the interface that the service must implement.
type GadgetDecommissioner interface {
	Decommission(ctx context.Context, gadgetID uuid.UUID) (*models.GadgetDB, error)
}

// DecommissionGadgetResponse represents a successful decommission response
// swagger:model DecommissionGadgetResponse
type DecommissionGadgetResponse struct {
	// Success message
	// default: Gadget successfully decommissioned
	Message string `json:"message"`

	// The decommissioned gadget
	Gadget *models.GadgetDB `json:"gadget"`
}

// DecommissionGadgetErrorResponse represents an error response for decommission
// swagger:model DecommissionGadgetErrorResponse
type DecommissionGadgetErrorResponse struct {
	// Error message
	// default: Gadget not found
	Message string `json:"message"`
}

// NewDecommissionGadgetHandler returns an HTTP handler for the soft delete:
// the gadget is marked DECOMMISSIONED and timestamped, never removed.
// @Summary Decommission a gadget
// @Description Marks the gadget as DECOMMISSIONED instead of deleting it
// @Tags gadgets
// @Produce json
// @Param gadgetID path string true "Gadget id"
// @Success 200 {object} handlers.DecommissionGadgetResponse "Decommissioned gadget"
// @Failure 400 {object} handlers.DecommissionGadgetErrorResponse "Gadget already destroyed"
// @Failure 401 {object} handlers.DecommissionGadgetErrorResponse "Not authorized"
// @Failure 403 {object} handlers.DecommissionGadgetErrorResponse "Role not permitted"
// @Failure 404 {object} handlers.DecommissionGadgetErrorResponse "Gadget not found"
// @Failure 500 {object} handlers.DecommissionGadgetErrorResponse "Internal server error"
// @Router /gadgets/{gadgetID} [delete]
// @Security BearerAuth
func NewDecommissionGadgetHandler(svc GadgetDecommissioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		gadgetID, ok := gadgetIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DecommissionGadgetErrorResponse{
				Message: "Gadget not found",
			})
			return
		}

		gadget, err := svc.Decommission(r.Context(), gadgetID)
		if err != nil {
			var terminalErr *services.TerminalStateError
			switch {
			case errors.Is(err, services.ErrGadgetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DecommissionGadgetErrorResponse{
					Message: "Gadget not found",
				})
			case errors.As(err, &terminalErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DecommissionGadgetErrorResponse{
					Message: terminalErr.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DecommissionGadgetErrorResponse{
					Message: "Failed to decommission gadget",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DecommissionGadgetResponse{
			Message: "Gadget successfully decommissioned",
			Gadget:  gadget,
		})
	}
}
