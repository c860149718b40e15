package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/imfops/gadget-api/internal/logger"
	"github.com/imfops/gadget-api/internal/models"
	"github.com/imfops/gadget-api/internal/services"
)

// GadgetGetter defines the interface that the service must implement.
type GadgetGetter interface {
	Get(ctx context.Context, gadgetID uuid.UUID) (*models.Gadget, error)
}

// GetGadgetErrorResponse represents an error response for the get endpoint
// swagger:model GetGadgetErrorResponse
type GetGadgetErrorResponse struct {
	// Error message
	// default: Gadget not found
	Message string `json:"message"`
}

// gadgetIDFromRequest parses the gadgetID route parameter. An unparseable
// id is treated the same as an unknown one.
func gadgetIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "gadgetID"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// NewGetGadgetHandler returns an HTTP handler fetching one gadget by id,
// annotated with a freshly generated mission success probability.
// @Summary Get a gadget
// @Description Returns one gadget by id
// @Tags gadgets
// @Produce json
// @Param gadgetID path string true "Gadget id"
// @Success 200 {object} models.Gadget "Gadget"
// @Failure 401 {object} handlers.GetGadgetErrorResponse "Not authorized"
// @Failure 404 {object} handlers.GetGadgetErrorResponse "Gadget not found"
// @Failure 500 {object} handlers.GetGadgetErrorResponse "Internal server error"
// @Router /gadgets/{gadgetID} [get]
// @Security BearerAuth
func NewGetGadgetHandler(svc GadgetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		gadgetID, ok := gadgetIDFromRequest(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetGadgetErrorResponse{
				Message: "Gadget not found",
			})
			return
		}

		gadget, err := svc.Get(r.Context(), gadgetID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGadgetNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetGadgetErrorResponse{
					Message: "Gadget not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetGadgetErrorResponse{
					Message: "Failed to retrieve gadget",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gadget)
	}
}
