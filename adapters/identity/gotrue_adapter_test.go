package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

func newTestAdapter(baseURL string) *gotrueAdapter {
	return &gotrueAdapter{
		baseURL:    baseURL,
		serviceKey: "service-key",
		httpClient: &http.Client{Timeout: 2 * time.Second},
		logger:     logger.NewNop(),
	}
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u-1"}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestSignUp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/admin/users", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, true, body["email_confirm"])
		assert.Equal(t, "jo@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":            "u-1",
			"email":         "jo@example.com",
			"user_metadata": map[string]string{"name": "Jo"},
		})
	}))
	defer srv.Close()

	id, err := newTestAdapter(srv.URL).SignUp(context.Background(), "jo@example.com", "hunter22", "Jo")
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.ID)
	assert.Equal(t, "jo@example.com", id.Email)
	assert.Equal(t, "Jo", id.Name)
}

func TestSignUp_DuplicateEmailSurfacesProviderMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"msg": "A user with this email address has already been registered"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).SignUp(context.Background(), "jo@example.com", "hunter22", "Jo")
	require.ErrorIs(t, err, apperror.ErrProvider)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "A user with this email address has already been registered", appErr.Message)
}

func TestSignUp_TransportFailureIsInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := newTestAdapter(srv.URL).SignUp(context.Background(), "jo@example.com", "hunter22", "Jo")
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestResolveCaller_Success(t *testing.T) {
	token := testToken(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{"id": "u-1", "email": "jo@example.com"})
	}))
	defer srv.Close()

	id, err := newTestAdapter(srv.URL).ResolveCaller(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.ID)
	assert.Equal(t, "jo@example.com", id.Email)
}

func TestResolveCaller_RejectedTokenIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "invalid JWT"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).ResolveCaller(context.Background(), "Bearer "+testToken(t))
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestResolveCaller_MalformedHeadersFailWithoutNetwork(t *testing.T) {
	// Any request reaching the server fails the test: structural problems
	// must be caught locally.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("provider should not have been called")
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv.URL)
	for _, header := range []string{"", "Bearer ", "Token abc", "Bearer not-a-jwt"} {
		_, err := adapter.ResolveCaller(context.Background(), header)
		assert.ErrorIs(t, err, apperror.ErrUnauthorized, "header %q", header)
	}
}
