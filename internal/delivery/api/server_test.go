package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodlog/config"
	"foodlog/internal/delivery/api/router"
	"foodlog/internal/delivery/api/router/handler"
	"foodlog/internal/infra/auth"
	"foodlog/internal/infra/persistence/memory"
	mockUC "foodlog/internal/mocks/usecase"
	"foodlog/internal/usecase/impl"
)

type testServer struct {
	echo   *echo.Echo
	users  *memory.UserRepository
	foodUC *mockUC.MockFoodUsecase
	mealUC *mockUC.MockMealUsecase
}

// newTestServer wires the real account service over the in-memory store and mocks the catalog and meal log.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Credential = &config.CredentialConfig{
		Digest:     "sha256",
		Iterations: 100000,
		KeyLength:  32,
		SaltLength: 16,
	}

	codec, err := auth.NewPBKDF2Codec(cfg)
	require.NoError(t, err)

	srv := &testServer{
		users:  memory.NewUserRepository(),
		foodUC: mockUC.NewMockFoodUsecase(t),
		mealUC: mockUC.NewMockMealUsecase(t),
	}
	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo: srv.users,
		Codec:    codec,
		Logger:   logger,
	})

	srv.echo = NewEcho(cfg, logger, router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		FoodHandler: handler.NewFoodHandler(handler.FoodHandlerParams{FoodUC: srv.foodUC, Logger: logger}),
		MealHandler: handler.NewMealHandler(handler.MealHandlerParams{MealUC: srv.mealUC, Logger: logger}),
	})

	return srv
}

func (s *testServer) do(t *testing.T, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/health", "", echo.HeaderXRequestID, "health-1")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, "health-1", env.Meta.RequestID)
	assert.Equal(t, "health-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestUnknownRoute_RendersErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
}
