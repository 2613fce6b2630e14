package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      RegisterRequest
		rawBody      string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			reqBody: RegisterRequest{
				Username: "john",
				Email:    "john@example.com",
				Password: "secret123",
				FullName: "John Doe",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret123", "John Doe").
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "User registered successfully"},
		},
		{
			name: "user already exists",
			reqBody: RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pass", "").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "Username or email already exists"},
		},
		{
			name: "missing fields",
			reqBody: RegisterRequest{
				Username: "bob",
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username, email and password are required"},
		},
		{
			name: "internal server error",
			reqBody: RegisterRequest{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "pass", "").
					Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      "{invalid json}",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.rawBody))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		reqBody      LoginRequest
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:    "success",
			reqBody: LoginRequest{Username: "john", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret123").
					Return("token123", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"token": "token123"},
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Username: "john", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid username or password"},
		},
		{
			name:    "unknown user",
			reqBody: LoginRequest{Username: "ghost", Password: "pass"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost", "pass").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid username or password"},
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Username: "john", Password: "pass"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "pass").
					Return("", errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(bodyBytes))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileReader(ctrl)
	mockSvc.EXPECT().
		GetProfile(gomock.Any(), testUserID).
		Return(&models.UserDB{
			UserID:   testUserID,
			Username: "john",
			Email:    "john@example.com",
			Role:     models.RoleFamilyMember,
		}, nil)

	handler := NewGetProfileHandler(mockSvc)

	req := authedRequest(http.MethodGet, "/auth/profile", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var user models.UserDB
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "john", user.Username)
}

func TestGetProfileHandler_NoClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewGetProfileHandler(NewMockProfileReader(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/auth/profile", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockProfileWriter(ctrl)
	mockSvc.EXPECT().
		GetProfile(gomock.Any(), testUserID).
		Return(&models.UserDB{
			UserID:   testUserID,
			Username: "john",
			Theme:    "light",
		}, nil)
	mockSvc.EXPECT().
		UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, user *models.UserDB) error {
			assert.Equal(t, "John Q. Doe", user.FullName)
			assert.Equal(t, "dark", user.Theme)
			assert.True(t, user.TaskAlerts)
			return nil
		})

	handler := NewUpdateProfileHandler(mockSvc)

	bodyBytes, _ := json.Marshal(UpdateProfileRequest{
		FullName:   "John Q. Doe",
		Timezone:   "Europe/Berlin",
		Theme:      "dark",
		Language:   "en",
		TaskAlerts: true,
	})
	req := authedRequest(http.MethodPut, "/auth/profile", bytes.NewBuffer(bodyBytes))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserLister(ctrl)
	mockSvc.EXPECT().
		ListUsers(gomock.Any()).
		Return([]models.UserDB{
			{Username: "john", Role: models.RoleAdmin},
			{Username: "jane", Role: models.RoleFamilyMember},
		}, nil)

	handler := NewListUsersHandler(mockSvc)

	req := authedRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp UsersResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
}
