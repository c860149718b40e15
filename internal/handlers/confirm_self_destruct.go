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

// SelfDestructConfirmer defines the interface that the service must implement.
type SelfDestructConfirmer interface {
	ConfirmSelfDestruct(ctx context.Context, gadgetID uuid.UUID, confirmationCode string) (*models.GadgetDB, error)
}

// ConfirmSelfDestructRequest represents the JSON body for the second phase
// swagger:model ConfirmSelfDestructRequest
type ConfirmSelfDestructRequest struct {
	// Confirmation code from the initiation response
	// required: true
	// default: X7K2P9QA
	ConfirmationCode string `json:"confirmationCode"`
}

// ConfirmSelfDestructResponse represents a successful destruction response
// swagger:model ConfirmSelfDestructResponse
type ConfirmSelfDestructResponse struct {
	// Status message
	Message string `json:"message"`

	// The destroyed gadget
	Gadget *models.GadgetDB `json:"gadget"`
}

// ConfirmSelfDestructErrorResponse represents an error response for confirmation
// swagger:model ConfirmSelfDestructErrorResponse
type ConfirmSelfDestructErrorResponse struct {
	// Error message
	// default: Confirmation code required
	Message string `json:"message"`
}

// NewConfirmSelfDestructHandler returns an HTTP handler for the second
// phase of the self-destruct handshake: the submitted code is checked
// against the stored one and the gadget is destroyed on a match.
// @Summary Confirm self-destruct
// @Description Verifies the confirmation code and sets the gadget status to DESTROYED
// @Tags gadgets
// @Accept json
// @Produce json
// @Param gadgetID path string true "Gadget id"
// @Param confirmRequest body handlers.ConfirmSelfDestructRequest true "Confirmation code"
// @Success 200 {object} handlers.ConfirmSelfDestructResponse "Destroyed gadget"
// @Failure 400 {object} handlers.ConfirmSelfDestructErrorResponse "Missing, expired or mismatched code"
// @Failure 401 {object} handlers.ConfirmSelfDestructErrorResponse "Not authorized"
// @Failure 403 {object} handlers.ConfirmSelfDestructErrorResponse "Role not permitted"
// @Failure 404 {object} handlers.ConfirmSelfDestructErrorResponse "Gadget not found"
// @Failure 500 {object} handlers.ConfirmSelfDestructErrorResponse "Internal server error"
// @Router /gadgets/{gadgetID}/confirm-self-destruct [post]
// @Security BearerAuth
func NewConfirmSelfDestructHandler(svc SelfDestructConfirmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		gadgetID, ok := gadgetIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ConfirmSelfDestructErrorResponse{
				Message: "Gadget not found",
			})
			return
		}

		var req ConfirmSelfDestructRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmSelfDestructErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.ConfirmationCode == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConfirmSelfDestructErrorResponse{
				Message: "Confirmation code required",
			})
			return
		}

		gadget, err := svc.ConfirmSelfDestruct(r.Context(), gadgetID, req.ConfirmationCode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGadgetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ConfirmSelfDestructErrorResponse{
					Message: "Gadget not found",
				})
			case errors.Is(err, services.ErrConfirmationCodeInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ConfirmSelfDestructErrorResponse{
					Message: "Invalid or expired confirmation code",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConfirmSelfDestructErrorResponse{
					Message: "Failed to complete self-destruct sequence",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConfirmSelfDestructResponse{
			Message: fmt.Sprintf("%s has been destroyed. This message will self-destruct in 5 seconds.", gadget.Codename),
			Gadget:  gadget,
		})
	}
}
