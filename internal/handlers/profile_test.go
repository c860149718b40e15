package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/imfops/gadget-api/internal/middlewares"
	"github.com/imfops/gadget-api/internal/models"
)

func TestProfileHandler(t *testing.T) {
	t.Run("authenticated caller", func(t *testing.T) {
		userID := uuid.New()
		user := &models.UserDB{
			UserID:       userID,
			Username:     "agent_hunt",
			PasswordHash: "hash",
			Role:         models.RoleAgent,
		}

		handler := NewProfileHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, map[string]string{
			"id":       userID.String(),
			"username": "agent_hunt",
			"role":     models.RoleAgent,
		}, resp)
		assert.NotContains(t, rr.Body.String(), "hash")
	})

	t.Run("no principal in context", func(t *testing.T) {
		handler := NewProfileHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Not authorized", resp["message"])
	})
}
