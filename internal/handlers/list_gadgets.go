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

// GadgetLister defines the interface that the service must implement.
type GadgetLister interface {
	List(ctx context.Context, status *string) ([]models.Gadget, error)
}

// ListGadgetsErrorResponse represents an error response for the list endpoint
// swagger:model ListGadgetsErrorResponse
type ListGadgetsErrorResponse struct {
	// Error message
	// default: Invalid status filter
	Message string `json:"message"`
}

// NewListGadgetsHandler returns an HTTP handler listing gadgets with an
// optional case-insensitive status filter. Every gadget is annotated with a
// freshly generated mission success probability.
// @Summary List gadgets
// @Description Returns all gadgets, optionally filtered by status
// @Tags gadgets
// @Produce json
// @Param status query string false "Status filter (case-insensitive)"
// @Success 200 {array} models.Gadget "Gadgets"
// @Failure 400 {object} handlers.ListGadgetsErrorResponse "Unknown status value"
// @Failure 401 {object} handlers.ListGadgetsErrorResponse "Not authorized"
// @Failure 500 {object} handlers.ListGadgetsErrorResponse "Internal server error"
// @Router /gadgets [get]
// @Security BearerAuth
func NewListGadgetsHandler(svc GadgetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var status *string
		if s := r.URL.Query().Get("status"); s != "" {
			status = &s
		}

		gadgets, err := svc.List(r.Context(), status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListGadgetsErrorResponse{
					Message: "Invalid status filter",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ListGadgetsErrorResponse{
					Message: "Failed to retrieve gadgets",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(gadgets)
	}
}
