package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/jwt"
	"github.com/evstratovd/home-manager/internal/models"
)

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name             string
		claims           *jwt.Claims
		requiredRole     string
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name:             "NoClaims",
			claims:           nil,
			requiredRole:     models.RoleFamilyMember,
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name:             "GuestBlockedFromMemberRoute",
			claims:           &jwt.Claims{UserID: uuid.New(), Role: models.RoleGuest},
			requiredRole:     models.RoleFamilyMember,
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name:             "MemberBlockedFromAdminRoute",
			claims:           &jwt.Claims{UserID: uuid.New(), Role: models.RoleFamilyMember},
			requiredRole:     models.RoleAdmin,
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name:             "MemberAllowed",
			claims:           &jwt.Claims{UserID: uuid.New(), Role: models.RoleFamilyMember},
			requiredRole:     models.RoleFamilyMember,
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
		{
			name:             "AdminAllowedEverywhere",
			claims:           &jwt.Claims{UserID: uuid.New(), Role: models.RoleAdmin},
			requiredRole:     models.RoleFamilyMember,
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			handler := RoleMiddleware(tt.requiredRole)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.claims != nil {
				req = req.WithContext(ContextWithClaims(req.Context(), tt.claims))
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}
