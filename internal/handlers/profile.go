package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/imfops/gadget-api/internal/middlewares"
)

// ProfileResponse represents the caller's own user record
// swagger:model ProfileResponse
type ProfileResponse struct {
	// User id
	ID string `json:"id"`

	// Username
	// default: agent_hunt
	Username string `json:"username"`

	// Role
	// default: AGENT
	Role string `json:"role"`
}

// ProfileErrorResponse represents an error response for the profile endpoint
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Not authorized
	Message string `json:"message"`
}

// NewProfileHandler returns an HTTP handler for the caller's own profile.
// The principal is resolved by the auth middleware; the password hash is
// never serialized.
// @Summary Get current agent profile
// @Description Returns the authenticated caller's own record
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Caller's record"
// @Failure 401 {object} handlers.ProfileErrorResponse "Not authorized"
// @Router /auth/profile [get]
// @Security BearerAuth
func NewProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{
				Message: "Not authorized",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			ID:       user.UserID.String(),
			Username: user.Username,
			Role:     user.Role,
		})
	}
}
