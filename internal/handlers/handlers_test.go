package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/evstratovd/home-manager/internal/jwt"
	"github.com/evstratovd/home-manager/internal/middlewares"
	"github.com/evstratovd/home-manager/internal/models"
)

var testUserID = uuid.MustParse("7b8258c5-4a23-4bd8-9f41-1f6910a7f1f1")

func testClaims() *jwt.Claims {
	return &jwt.Claims{
		UserID:   testUserID,
		Username: "john",
		Role:     models.RoleFamilyMember,
	}
}

// authedRequest builds a request carrying token claims, as if it had passed
// through AuthMiddleware.
func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middlewares.ContextWithClaims(req.Context(), testClaims()))
}

// withIDParam attaches a chi route parameter to the request context.
func withIDParam(req *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
