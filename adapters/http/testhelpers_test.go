package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/avlorenzana/jobtrail/internal/domain/identity"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
)

// fakeIdentityService accepts any bearer token and resolves it to a fixed
// caller. SignUp behavior is scripted per test.
type fakeIdentityService struct {
	caller     identity.Identity
	signUpErr  error
	signUpSeen int
}

func (f *fakeIdentityService) SignUp(_ context.Context, email, _, name string) (*identity.Identity, error) {
	f.signUpSeen++
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &identity.Identity{ID: "new-user", Email: email, Name: name}, nil
}

func (f *fakeIdentityService) ResolveCaller(_ context.Context, header string) (*identity.Identity, error) {
	if header == "" {
		return nil, apperror.NewUnauthorized("missing Authorization header", nil)
	}
	caller := f.caller
	return &caller, nil
}

type fakeMailer struct {
	configured bool
	sendErr    error
	sent       int
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) Send(context.Context, string, string, string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent++
	return nil
}

func defaultCaller() identity.Identity {
	return identity.Identity{ID: "u-1", Email: "me@example.com", Name: "Jo"}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func decodeJSONInto(t *testing.T, rr *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
}

func init() {
	gin.SetMode(gin.TestMode)
}
