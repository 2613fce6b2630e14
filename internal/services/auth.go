package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/evstratovd/home-manager/internal/logger"
	"github.com/evstratovd/home-manager/internal/models"
	"github.com/evstratovd/home-manager/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, fullName, role string) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, user *models.UserDB) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

// TokenGenerator defines an interface for generating access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username, role string) (string, error)
}

// AuthService handles registration, login and profile management.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenGenerator
	recorder ActivityRecorder
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, recorder ActivityRecorder) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		recorder: recorder,
	}
}

// Register registers a new user with the family_member role.
func (svc *AuthService) Register(ctx context.Context, username, email, password, fullName string) error {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword), fullName, models.RoleFamilyMember)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	svc.recorder.Record(ctx, userID, "user_registered", "user", userID)

	return nil
}

// Login authenticates a user and returns an access token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.UserID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to update last login", "userID", user.UserID, "err", err)
	}

	return token, nil
}

// GetProfile returns the profile of the given user.
func (svc *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrUserDoesNotExist
	}
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "err", err)
		return nil, err
	}
	return user, nil
}

// UpdateProfile overwrites the profile and preference fields of the given user.
func (svc *AuthService) UpdateProfile(ctx context.Context, user *models.UserDB) error {
	err := svc.writer.UpdateProfile(ctx, user)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserDoesNotExist
	}
	if err != nil {
		logger.Log.Errorw("failed to update profile", "userID", user.UserID, "err", err)
		return err
	}
	return nil
}

// ListUsers returns all users. Callers gate this behind the admin role.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
