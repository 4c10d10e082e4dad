package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/domain/repositories"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
)

const minPasswordLength = 8

// TokenIssuer signs access tokens
type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, email, name string) (string, error)
	GetAccessExpiry() time.Duration
}

// Service defines the interface for the auth use case
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*TokenOutput, error)
	Login(ctx context.Context, email, password string) (*TokenOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

var _ Service = (*PasswordService)(nil)

// RegisterInput holds signup data
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// TokenOutput is returned after a successful register or login
type TokenOutput struct {
	User        *entities.User
	AccessToken string
	ExpiresIn   int64
}

// PasswordService authenticates users by email and bcrypt password
type PasswordService struct {
	userRepo repositories.UserRepository
	tokens   TokenIssuer
	cost     int
}

// NewPasswordService creates a new auth service
func NewPasswordService(userRepo repositories.UserRepository, tokens TokenIssuer) *PasswordService {
	return &PasswordService{
		userRepo: userRepo,
		tokens:   tokens,
		cost:     bcrypt.DefaultCost,
	}
}

// HashPassword hashes a plain password with bcrypt
func (s *PasswordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates an account and signs the user in
func (s *PasswordService) Register(ctx context.Context, input RegisterInput) (*TokenOutput, error) {
	if len(input.Password) < minPasswordLength {
		return nil, ucErrors.Invalid("password must be at least %d characters", minPasswordLength)
	}

	hash, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(input.Email, input.Name, hash)
	if err := user.Validate(); err != nil {
		return nil, ucErrors.Invalid("%s", err.Error())
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, entities.ErrUserAlreadyExists) {
			return nil, ucErrors.ErrEmailAlreadyUsed
		}
		return nil, err
	}

	return s.issue(user)
}

// Login verifies credentials and returns a fresh access token
func (s *PasswordService) Login(ctx context.Context, email, password string) (*TokenOutput, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ucErrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ucErrors.ErrUserNotActive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ucErrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, err
	}
	user.UpdateLastLogin()

	return s.issue(user)
}

// Me returns the authenticated user
func (s *PasswordService) Me(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, ucErrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *PasswordService) issue(user *entities.User) (*TokenOutput, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &TokenOutput{
		User:        user,
		AccessToken: token,
		ExpiresIn:   int64(s.tokens.GetAccessExpiry().Seconds()),
	}, nil
}
