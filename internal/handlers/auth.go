package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"

	"github.com/google/uuid"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password, fullName string) error
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// ProfileReader fetches a user's profile.
type ProfileReader interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileWriter updates a user's profile and preferences.
type ProfileWriter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, user *models.UserDB) error
}

// UserLister lists all household members.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Full display name
	// default: John Doe
	FullName string `json:"full_name"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new family member account. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			writeError(w, http.StatusBadRequest, "Username, email and password are required")
			return
		}

		err := svc.Register(r.Context(), req.Username, req.Email, req.Password, req.FullName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, http.StatusConflict, "Username or email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
		})
	}
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}

// NewGetProfileHandler returns an HTTP handler for fetching the caller's profile.
// @Summary Get own profile
// @Description Returns the authenticated user's profile and preferences
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserDB "User profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get profile", "userID", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// UpdateProfileRequest represents the JSON body for profile updates
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Full display name
	FullName string `json:"full_name"`

	// Preferred timezone
	// default: UTC
	Timezone string `json:"timezone"`

	// UI theme
	// default: light
	Theme string `json:"theme"`

	// Preferred language
	// default: en
	Language string `json:"language"`

	// Email notifications enabled
	EmailAlerts bool `json:"email_alerts"`

	// Task reminder notifications enabled
	TaskAlerts bool `json:"task_alerts"`

	// Budget alert notifications enabled
	BudgetAlerts bool `json:"budget_alerts"`
}

// NewUpdateProfileHandler returns an HTTP handler for updating the caller's profile.
// @Summary Update own profile
// @Description Overwrites the authenticated user's display name and preferences
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r)
		if claims == nil {
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get profile", "userID", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		user.FullName = req.FullName
		user.Timezone = req.Timezone
		user.Theme = req.Theme
		user.Language = req.Language
		user.EmailAlerts = req.EmailAlerts
		user.TaskAlerts = req.TaskAlerts
		user.BudgetAlerts = req.BudgetAlerts

		if err := svc.UpdateProfile(r.Context(), user); err != nil {
			logger.Log.Errorw("failed to update profile", "userID", claims.UserID, "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// UsersResponse represents the list of household members
// swagger:model UsersResponse
type UsersResponse struct {
	// Household members
	Users []models.UserDB `json:"users"`
}

// NewListUsersHandler returns an HTTP handler for listing household members.
// @Summary List users
// @Description Returns all household member accounts. Admin only.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.UsersResponse "Household members"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, UsersResponse{Users: users})
	}
}
