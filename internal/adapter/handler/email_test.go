package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jarvis-assistant/assistant/errors"
	"github.com/jarvis-assistant/assistant/internal/domain/entities"
	httpmw "github.com/jarvis-assistant/assistant/internal/infrastructure/http/middleware"
	ucErrors "github.com/jarvis-assistant/assistant/internal/usecase/errors"
	"github.com/jarvis-assistant/assistant/internal/usecase/notification"
	"github.com/jarvis-assistant/assistant/internal/usecase/system"
	pkgvalidator "github.com/jarvis-assistant/assistant/pkg/validator"
)

type stubEmailService struct {
	delivered []notification.Message
	err       error
}

func (s *stubEmailService) Deliver(_ context.Context, msg notification.Message) error {
	if s.err != nil {
		return s.err
	}
	s.delivered = append(s.delivered, msg)
	return nil
}

func (s *stubEmailService) Recent(context.Context, uuid.UUID, int) ([]*entities.EmailLog, error) {
	return nil, nil
}

type stubDrafter struct {
	req notification.DraftRequest
	err error
}

func (s *stubDrafter) Draft(_ context.Context, _ uuid.UUID, req notification.DraftRequest) (*notification.Draft, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return &notification.Draft{Subject: "Q3 report", Body: "Hi Bob"}, nil
}

type stubStatus struct{}

func (stubStatus) Status(context.Context, uuid.UUID) *system.Status {
	return &system.Status{LLMConnected: true, SMTPError: "smtp configuration incomplete", DatabaseConnected: true, Message: "> AI ready. Email configuration needed."}
}

func serveRoutes(t *testing.T, h Handlers, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = pkgvalidator.New()
	owner := uuid.New()
	asOwner := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(httpmw.UserIDKey, owner)
			return next(c)
		}
	}
	rt := &Router{handlers: h}
	g := e.Group("/v1", asOwner)
	rt.setupEmailRoutes(g)
	rt.setupSystemRoutes(g)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEmailSend(t *testing.T) {
	svc := &stubEmailService{}
	h := Handlers{Email: NewEmailHandler(svc, &stubDrafter{}, nil)}

	rec := serveRoutes(t, h, http.MethodPost, "/v1/emails/send", `{"recipient":"Bob@Example.com","subject":"Hi","body":"Hello","email_type":"task_assignment"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.delivered, 1)
	assert.Equal(t, "bob@example.com", svc.delivered[0].Recipient)
	assert.Equal(t, entities.EmailCategoryTaskAssignment, svc.delivered[0].Category)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "bob@example.com", data["recipient"])
}

func TestEmailSend_DefaultsToGeneral(t *testing.T) {
	svc := &stubEmailService{}
	h := Handlers{Email: NewEmailHandler(svc, &stubDrafter{}, nil)}

	rec := serveRoutes(t, h, http.MethodPost, "/v1/emails/send", `{"recipient":"bob@example.com","subject":"Hi","body":"Hello"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.delivered, 1)
	assert.Equal(t, entities.EmailCategoryGeneral, svc.delivered[0].Category)
}

func TestEmailSend_Validation(t *testing.T) {
	h := Handlers{Email: NewEmailHandler(&stubEmailService{}, &stubDrafter{}, nil)}

	for _, body := range []string{
		`{"recipient":"not-an-email","subject":"Hi","body":"Hello"}`,
		`{"recipient":"bob@example.com","body":"Hello"}`,
		`{"recipient":"bob@example.com","subject":"Hi","body":"Hello","email_type":"spam"}`,
	} {
		rec := serveRoutes(t, h, http.MethodPost, "/v1/emails/send", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestEmailSend_RelayFailureIsBadGateway(t *testing.T) {
	svc := &stubEmailService{err: ucErrors.External("smtp", errors.New("550 mailbox unavailable"))}
	h := Handlers{Email: NewEmailHandler(svc, &stubDrafter{}, nil)}

	rec := serveRoutes(t, h, http.MethodPost, "/v1/emails/send", `{"recipient":"bob@example.com","subject":"Hi","body":"Hello"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	body := decode(t, rec)
	assert.EqualValues(t, apperrors.ErrorCode_INTEGRATION_EXTERNAL_API_FAILED, body["code"])
	assert.Equal(t, "550 mailbox unavailable", body["info"])
}

func TestEmailDraft(t *testing.T) {
	drafter := &stubDrafter{}
	h := Handlers{Email: NewEmailHandler(&stubEmailService{}, drafter, nil)}

	rec := serveRoutes(t, h, http.MethodPost, "/v1/emails/draft", `{"recipient":"Bob","context":"own the Q3 report"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bob", drafter.req.Recipient)
	assert.Equal(t, entities.EmailCategoryGeneral, drafter.req.Category)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "Q3 report", data["subject"])
	assert.Equal(t, "Hi Bob", data["body"])
}

func TestEmailDraft_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ucErrors.Invalid("llm api key not configured"), http.StatusBadRequest},
		{ucErrors.External("llm", errors.New("status 503")), http.StatusBadGateway},
	}
	for _, tc := range cases {
		h := Handlers{Email: NewEmailHandler(&stubEmailService{}, &stubDrafter{err: tc.err}, nil)}
		rec := serveRoutes(t, h, http.MethodPost, "/v1/emails/draft", `{"recipient":"Bob","context":"x"}`)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestSystemStatus(t *testing.T) {
	h := Handlers{System: NewSystemHandler(stubStatus{}, nil)}

	rec := serveRoutes(t, h, http.MethodGet, "/v1/system/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["llm_connected"])
	assert.Equal(t, false, data["smtp_connected"])
	assert.Equal(t, "smtp configuration incomplete", data["smtp_error"])
	assert.Equal(t, "> AI ready. Email configuration needed.", data["message"])
}
