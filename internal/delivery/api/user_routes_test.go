package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceRegistration = `{"username":"alice","email":"Alice@Example.com","password":"secret123"}`

func TestUserRoutes_RegisterReturnsPublicUser(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/users", aliceRegistration)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)

	var user map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.NotZero(t, user["id"])
	assert.ElementsMatch(t, []string{"id", "username", "email", "created_at"}, keys(user))
	assert.NotContains(t, rec.Body.String(), "pbkdf2")

	stored, err := srv.users.FindByUsername(t.Context(), "alice")
	require.NoError(t, err)
	assert.Contains(t, stored.PasswordCredential, "pbkdf2$sha256$100000$")
}

func TestUserRoutes_RegisterConflicts(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusCreated, srv.do(t, http.MethodPost, "/api/users", aliceRegistration).Code)

	tests := []struct {
		name string
		body string
	}{
		{name: "same username in other case", body: `{"username":"ALICE","email":"other@example.com","password":"secret123"}`},
		{name: "same email in other case", body: `{"username":"bob","email":"alice@EXAMPLE.com","password":"secret123"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/api/users", tt.body)

			require.Equal(t, http.StatusConflict, rec.Code)
			assert.Equal(t, "USER_ALREADY_EXISTS", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestUserRoutes_RegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name    string
		body    string
		details string
	}{
		{name: "short password", body: `{"username":"alice","email":"a@example.com","password":"12345"}`, details: "password must be at least 6 characters"},
		{name: "short username", body: `{"username":" al ","email":"a@example.com","password":"secret123"}`, details: "username must be at least 3 characters"},
		{name: "missing email", body: `{"username":"alice","password":"secret123"}`, details: "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/api/users", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Equal(t, tt.details, env.Error.Details)
		})
	}

	users, err := srv.users.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRoutes_RegisterMalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/users", `{"username":`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestUserRoutes_Login(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusCreated, srv.do(t, http.MethodPost, "/api/users", aliceRegistration).Code)

	rec := srv.do(t, http.MethodPost, "/api/users/login", `{"username":" alice ","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var user map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &user))
	assert.Equal(t, "alice", user["username"])
	assert.ElementsMatch(t, []string{"id", "username", "email", "created_at"}, keys(user))
}

func TestUserRoutes_LoginFailuresAreIndistinguishable(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusCreated, srv.do(t, http.MethodPost, "/api/users", aliceRegistration).Code)

	wrongPassword := srv.do(t, http.MethodPost, "/api/users/login",
		`{"username":"alice","password":"wrong-password"}`, echo.HeaderXRequestID, "login-attempt")
	unknownUser := srv.do(t, http.MethodPost, "/api/users/login",
		`{"username":"mallory","password":"wrong-password"}`, echo.HeaderXRequestID, "login-attempt")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())

	env := decodeEnvelope(t, wrongPassword)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestUserRoutes_LoginRequiresFields(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/api/users/login", `{"username":"alice"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password is required", decodeEnvelope(t, rec).Error.Details)
}

func TestUserRoutes_GetAndList(t *testing.T) {
	srv := newTestServer(t)
	created := srv.do(t, http.MethodPost, "/api/users", aliceRegistration)
	require.Equal(t, http.StatusCreated, created.Code)
	require.Equal(t, http.StatusCreated, srv.do(t, http.MethodPost, "/api/users",
		`{"username":"bob","email":"bob@example.com","password":"secret123"}`).Code)

	var alice struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, created).Data, &alice))

	rec := srv.do(t, http.MethodGet, "/api/users/"+strconv.FormatInt(alice.ID, 10), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "credential")
	assert.NotContains(t, rec.Body.String(), "password")

	rec = srv.do(t, http.MethodGet, "/api/users/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "USER_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)

	rec = srv.do(t, http.MethodGet, "/api/users/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Error.Code)

	rec = srv.do(t, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &users))
	require.Len(t, users, 2)
	for _, user := range users {
		assert.ElementsMatch(t, []string{"id", "username", "email", "created_at"}, keys(user))
	}
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
