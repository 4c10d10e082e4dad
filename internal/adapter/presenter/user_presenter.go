package presenter

import (
	authDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/auth"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	"github.com/jarvis-assistant/assistant/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	return &authDTO.UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Name:        u.Name,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// ToAuthResponse converts usecase TokenOutput to DTO AuthResponse
func ToAuthResponse(out *auth.TokenOutput) *authDTO.AuthResponse {
	if out == nil {
		return nil
	}

	return &authDTO.AuthResponse{
		AccessToken: out.AccessToken,
		ExpiresIn:   int(out.ExpiresIn),
		TokenType:   "Bearer",
		User:        ToUserResponse(out.User),
	}
}
