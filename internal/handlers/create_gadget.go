package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
	"github.com/imfops/gadget-api/internal/services"
)

// GadgetCreator defines the interface that the service must implement.
type GadgetCreator interface {
	Create(ctx context.Context, name, description string, codename *string) (*models.GadgetDB, error)
}

// CreateGadgetRequest represents the JSON body for gadget creation
// swagger:model CreateGadgetRequest
type CreateGadgetRequest struct {
	// Display name
	// required: true
	// default: Grapple Gun
	Name string `json:"name"`

	// Description
	// default: Compressed-air grappling hook
	Description string `json:"description"`

	// Codename. Generated when omitted.
	Codename *string `json:"codename"`
}

// CreateGadgetErrorResponse represents an error response for gadget creation
// swagger:model CreateGadgetErrorResponse
type CreateGadgetErrorResponse struct {
	// Error message
	// default: Name is required
	Message string `json:"message"`
}

// NewCreateGadgetHandler returns an HTTP handler creating a gadget. When no
// codename is supplied a unique one is generated.
// @Summary Create a gadget
// @Description Creates a gadget with status AVAILABLE and a unique codename
// @Tags gadgets
// @Accept json
// @Produce json
// @Param createGadgetRequest body handlers.CreateGadgetRequest true "Gadget creation request"
// @Success 201 {object} models.GadgetDB "Created gadget"
// @Failure 400 {object} handlers.CreateGadgetErrorResponse "Missing name or codename already in use"
// @Failure 401 {object} handlers.CreateGadgetErrorResponse "Not authorized"
// @Failure 403 {object} handlers.CreateGadgetErrorResponse "Role not permitted"
// @Failure 500 {object} handlers.CreateGadgetErrorResponse "Internal server error"
// @Router /gadgets [post]
// @Security BearerAuth
func NewCreateGadgetHandler(svc GadgetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateGadgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateGadgetErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateGadgetErrorResponse{
				Message: "Name is required",
			})
			return
		}

		gadget, err := svc.Create(r.Context(), req.Name, req.Description, req.Codename)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCodenameTaken):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateGadgetErrorResponse{
					Message: "Codename already in use",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateGadgetErrorResponse{
					Message: "Failed to create gadget",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(gadget)
	}
}
