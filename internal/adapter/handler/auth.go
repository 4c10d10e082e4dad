package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/errors"
	authDTO "github.com/jarvis-assistant/assistant/internal/adapter/dto/auth"
	"github.com/jarvis-assistant/assistant/internal/adapter/presenter"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /auth/register
// @Summary      Create an account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authDTO.RegisterRequest  true  "Account details"
// @Success      201      {object}  authDTO.AuthResponse
// @Failure      400      {object}  map[string]interface{}  "Validation failed"
// @Failure      409      {object}  map[string]interface{}  "Email already registered"
// @Router       /auth/register [post]
func (h *Auth) Register(c echo.Context) error {
	var req authDTO.RegisterRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.authService.Register(c.Request().Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if stdErrors.Is(err, ucErrors.ErrEmailAlreadyUsed) {
			err = errors.ErrUserAlreadyExists(req.Email)
		}
		return HandleError(h.logger, c, err)
	}
	return HandleCreated(h.logger, c, presenter.ToAuthResponse(out))
}

// Login handles POST /auth/login
// @Summary      Sign in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request  body      authDTO.LoginRequest  true  "Credentials"
// @Success      200      {object}  authDTO.AuthResponse
// @Failure      401      {object}  map[string]interface{}  "Invalid email or password"
// @Router       /auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	var req authDTO.LoginRequest
	if err := bind(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAuthResponse(out))
}

// Me returns current user info
// @Summary      Current user
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  authDTO.UserResponse
// @Failure      401  {object}  map[string]interface{}  "Not authenticated"
// @Router       /auth/me [get]
func (h *Auth) Me(c echo.Context) error {
	userID, err := ownerID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToUserResponse(user))
}
