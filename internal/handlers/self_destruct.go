package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
	"github.com/imfops/gadget-api/internal/services"
)

// SelfDestructInitiator defines the interface that the service must implement.
type SelfDestructInitiator interface {
	InitiateSelfDestruct(ctx context.Context, gadgetID uuid.UUID) (string, *models.GadgetDB, error)
}

// SelfDestructResponse represents a successful initiation response
// swagger:model SelfDestructResponse
type SelfDestructResponse struct {
	// Status message
	// default: Self-destruct sequence initiated for The Kraken
	Message string `json:"message"`

	// Confirmation code for the second phase
	ConfirmationCode string `json:"confirmationCode"`

	// Gadget id
	GadgetID string `json:"gadgetId"`
}

// SelfDestructErrorResponse represents an error response for initiation
// swagger:model SelfDestructErrorResponse
type SelfDestructErrorResponse struct {
	// Error message
	// default: Gadget not found
	Message string `json:"message"`
}

// NewSelfDestructHandler returns an HTTP handler for the first phase of the
// self-destruct handshake: a confirmation code is generated, stored with a
// TTL and handed to the caller.
// @Summary Initiate self-destruct
// @Description Generates a confirmation code for the gadget. Fails on destroyed or decommissioned gadgets.
// @Tags gadgets
// @Produce json
// @Param gadgetID path string true "Gadget id"
// @Success 200 {object} handlers.SelfDestructResponse "Confirmation code"
// @Failure 400 {object} handlers.SelfDestructErrorResponse "Gadget already in a terminal status"
// @Failure 401 {object} handlers.SelfDestructErrorResponse "Not authorized"
// @Failure 403 {object} handlers.SelfDestructErrorResponse "Role not permitted"
// @Failure 404 {object} handlers.SelfDestructErrorResponse "Gadget not found"
// @Failure 500 {object} handlers.SelfDestructErrorResponse "Internal server error"
// @Router /gadgets/{gadgetID}/self-destruct [post]
// @Security BearerAuth
func NewSelfDestructHandler(svc SelfDestructInitiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		gadgetID, ok := gadgetIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SelfDestructErrorResponse{
				Message: "Gadget not found",
			})
			return
		}

		code, gadget, err := svc.InitiateSelfDestruct(r.Context(), gadgetID)
		if err != nil {
			var terminalErr *services.TerminalStateError
			switch {
			case errors.Is(err, services.ErrGadgetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SelfDestructErrorResponse{
					Message: "Gadget not found",
				})
			case errors.As(err, &terminalErr):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SelfDestructErrorResponse{
					Message: terminalErr.Error(),
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SelfDestructErrorResponse{
					Message: "Failed to initiate self-destruct sequence",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SelfDestructResponse{
			Message:          fmt.Sprintf("Self-destruct sequence initiated for %s", gadget.Codename),
			ConfirmationCode: code,
			GadgetID:         gadget.GadgetID.String(),
		})
	}
}
