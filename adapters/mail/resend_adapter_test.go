package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlorenzana/jobtrail/internal/config"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

func newTestMailer(endpoint string) *resendAdapter {
	return &resendAdapter{
		apiKey:     "re_test_key",
		from:       "Job Trail <onboarding@resend.dev>",
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 2 * time.Second},
		logger:     logger.NewNop(),
	}
}

func TestConfigured(t *testing.T) {
	unconfigured := NewResendAdapter(config.Config{}, logger.NewNop())
	assert.False(t, unconfigured.Configured())

	assert.True(t, newTestMailer("http://example.invalid").Configured())
}

func TestSend_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		var body struct {
			From    string   `json:"from"`
			To      []string `json:"to"`
			Subject string   `json:"subject"`
			HTML    string   `json:"html"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"me@example.com"}, body.To)
		assert.Equal(t, "hello", body.Subject)

		json.NewEncoder(w).Encode(map[string]string{"id": "email-1"})
	}))
	defer srv.Close()

	err := newTestMailer(srv.URL).Send(context.Background(), "me@example.com", "hello", "<p>hi</p>")
	assert.NoError(t, err)
}

func TestSend_ProviderRejectionSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "You can only send testing emails to your own address"})
	}))
	defer srv.Close()

	err := newTestMailer(srv.URL).Send(context.Background(), "me@example.com", "hello", "<p>hi</p>")
	require.ErrorIs(t, err, apperror.ErrProvider)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "You can only send testing emails to your own address", appErr.Message)
}

func TestSend_TransportFailureIsInternal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	err := newTestMailer(srv.URL).Send(context.Background(), "me@example.com", "hello", "<p>hi</p>")
	assert.ErrorIs(t, err, apperror.ErrInternal)
}
