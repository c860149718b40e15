package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/imfops/gadget-api/internal/jwt"
	"github.com/imfops/gadget-api/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "agent_hunt", Role: models.RoleAgent}

	tests := []struct {
		name         string
		mockSetup    func(tokener *MockTokener, users *MockUserGetter)
		expectedCode int
		expectedBody string
		expectUser   bool
	}{
		{
			name: "valid token",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token123", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "token123").
					Return(&jwt.Claims{UserID: userID}, nil)
				users.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(user, nil)
			},
			expectedCode: http.StatusOK,
			expectUser:   true,
		},
		{
			name: "missing token",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("authorization header missing"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Not authorized",
		},
		{
			name: "invalid token",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token123", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "token123").
					Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Not authorized",
		},
		{
			name: "token references unknown user",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token123", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "token123").
					Return(&jwt.Claims{UserID: userID}, nil)
				users.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Not authorized",
		},
		{
			name: "user store error",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("token123", nil)
				tokener.EXPECT().
					GetClaims(gomock.Any(), "token123").
					Return(&jwt.Claims{UserID: userID}, nil)
				users.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			var gotUser *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockUsers)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectUser {
				assert.Equal(t, user, gotUser)
			} else {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, resp["message"])
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name         string
		user         *models.UserDB
		allowed      []string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "role permitted",
			user:         &models.UserDB{UserID: uuid.New(), Username: "h1", Role: models.RoleHandler},
			allowed:      []string{models.RoleHandler, models.RoleAdmin},
			expectedCode: http.StatusOK,
		},
		{
			name:         "role not permitted",
			user:         &models.UserDB{UserID: uuid.New(), Username: "a1", Role: models.RoleAgent},
			allowed:      []string{models.RoleHandler, models.RoleAdmin},
			expectedCode: http.StatusForbidden,
			expectedBody: "Access denied: insufficient permissions",
		},
		{
			name:         "no authenticated user",
			user:         nil,
			allowed:      []string{models.RoleAdmin},
			expectedCode: http.StatusUnauthorized,
			expectedBody: "Not authorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			handler := RequireRoles(tt.allowed...)(next)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = req.WithContext(SetUserToContext(req.Context(), tt.user))
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != "" {
				var resp map[string]string
				err := json.Unmarshal(rr.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBody, resp["message"])
			}
		})
	}
}
