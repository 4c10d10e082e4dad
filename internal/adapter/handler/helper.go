package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/jarvis-assistant/assistant/errors"
	httpmw "github.com/jarvis-assistant/assistant/internal/infrastructure/http/middleware"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	pkgvalidator "github.com/jarvis-assistant/assistant/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID tries to read X-Request-ID from the request, then the response
// header set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusCreated, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr, ok := toAppError(c, err)
	if !ok {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	// Internal causes stay in the log.
	info := ""
	if appErr.Raw != nil && appErr.Code != errors.ErrorCode_INTERNAL {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	})
}

// ErrorHandler renders AppErrors returned by middleware in the same shape
// as handler errors; everything else goes to Echo's default handler
func ErrorHandler(logger *zap.Logger, e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var appErr errors.AppError
		if !stdErrors.As(err, &appErr) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}
		if hErr := HandleError(logger, c, appErr); hErr != nil {
			e.Logger.Error(hErr)
		}
	}
}

// toAppError classifies usecase errors into API errors
func toAppError(c echo.Context, err error) (errors.AppError, bool) {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr, true
	}

	var stateErr *ucErrors.StateError
	if stdErrors.As(err, &stateErr) {
		return errors.ErrFlowInvalidState(stateErr.Operation, stateErr.Current, stateErr.Expected), true
	}

	var inputErr *ucErrors.InputError
	if stdErrors.As(err, &inputErr) {
		if stdErrors.Is(err, ucErrors.ErrInvalidContact) {
			return errors.ErrContactInvalid(inputErr.Reason), true
		}
		return errors.ErrInvalidArgument(inputErr.Reason), true
	}

	var extErr *ucErrors.ExternalError
	if stdErrors.As(err, &extErr) {
		return errors.ErrExternalAPIFailed(extErr.Service, extErr.Err), true
	}

	switch {
	case stdErrors.Is(err, ucErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error()), true
	case stdErrors.Is(err, ucErrors.ErrFlowConflict):
		return errors.ErrFlowConflict(), true
	case stdErrors.Is(err, ucErrors.ErrFlowNotFound):
		return errors.ErrFlowNotFound(), true
	case stdErrors.Is(err, ucErrors.ErrFlowBusy):
		return errors.ErrFlowBusy(), true
	case stdErrors.Is(err, ucErrors.ErrStaleFlow):
		return errors.ErrFlowStale(), true
	case stdErrors.Is(err, ucErrors.ErrSummaryFailed):
		return errors.ErrSummaryFailed(err), true
	case stdErrors.Is(err, ucErrors.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(c.Param("id")), true
	case stdErrors.Is(err, ucErrors.ErrMinutesNotFound):
		return errors.ErrNotFound("Archived minutes"), true
	case stdErrors.Is(err, ucErrors.ErrArchiveDisabled):
		return errors.ErrArchiveDisabled(), true
	case stdErrors.Is(err, ucErrors.ErrInvalidCredentials):
		return errors.ErrInvalidCredentials(), true
	case stdErrors.Is(err, ucErrors.ErrUserNotFound):
		return errors.ErrUserNotFound(), true
	case stdErrors.Is(err, ucErrors.ErrEmailAlreadyUsed):
		return errors.ErrAlreadyExists("User"), true
	case stdErrors.Is(err, ucErrors.ErrUnauthorized), stdErrors.Is(err, ucErrors.ErrUserNotActive):
		return errors.ErrUnauthenticated(), true
	}
	return errors.AppError{}, false
}

// bind decodes and validates the request body into req
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload().WithRaw(err)
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrInvalidArgument(pkgvalidator.Message(err))
	}
	return nil
}

// ownerID returns the authenticated user set by the auth middleware
func ownerID(c echo.Context) (uuid.UUID, error) {
	id, ok := httpmw.UserID(c)
	if !ok {
		return uuid.Nil, errors.ErrUnauthenticated()
	}
	return id, nil
}

// pathID parses the :id path parameter
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.ErrInvalidArgument("id must be a valid UUID")
	}
	return id, nil
}
