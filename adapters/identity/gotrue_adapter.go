package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/internal/config"
	domain "github.com/avlorenzana/jobtrail/internal/domain/identity"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

// gotrueAdapter talks to a GoTrue-compatible identity service. Account
// creation goes through the admin endpoint with the service credential and
// pre-confirms the email, so no verification round-trip is needed.
type gotrueAdapter struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	logger     logger.Logger
}

func NewGoTrueAdapter(cfg config.Config, log logger.Logger) (domain.Service, error) {
	if cfg.Identity.URL == "" {
		return nil, fmt.Errorf("identity url has not config")
	}

	return &gotrueAdapter{
		baseURL:    strings.TrimRight(cfg.Identity.URL, "/"),
		serviceKey: cfg.Identity.ServiceKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}, nil
}

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (u gotrueUser) toDomain() *domain.Identity {
	return &domain.Identity{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.UserMetadata.Name,
	}
}

// gotrueError covers the message field variants GoTrue uses across versions.
type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func (e gotrueError) text() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	}
	return "identity provider rejected the request"
}

func (a *gotrueAdapter) SignUp(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	body, err := json.Marshal(map[string]any{
		"email":         email,
		"password":      password,
		"email_confirm": true,
		"user_metadata": map[string]string{"name": name},
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal signup request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/admin/users", bytes.NewReader(body))
	if err != nil {
		return nil, apperror.NewInternal("failed to build signup request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.serviceKey)
	req.Header.Set("apikey", a.serviceKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewInternal("identity service unreachable", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewInternal("failed to read identity service response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var provErr gotrueError
		_ = json.Unmarshal(payload, &provErr)
		a.logger.Warn("Identity provider rejected signup", zap.Int("status", resp.StatusCode), zap.String("msg", provErr.text()))
		return nil, apperror.NewProvider(provErr.text(), nil)
	}

	var user gotrueUser
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, apperror.NewInternal("failed to decode identity service response", err)
	}
	return user.toDomain(), nil
}

func (a *gotrueAdapter) ResolveCaller(ctx context.Context, authorizationHeader string) (*domain.Identity, error) {
	token, err := extractBearerToken(authorizationHeader)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/user", nil)
	if err != nil {
		return nil, apperror.NewInternal("failed to build token exchange request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", a.serviceKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewInternal("identity service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.NewUnauthorized("identity provider rejected the token", nil)
	}

	var user gotrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, apperror.NewInternal("failed to decode identity service response", err)
	}
	return user.toDomain(), nil
}

// extractBearerToken pulls the token out of an "Authorization: Bearer x"
// header and checks that it is at least a structurally valid JWT before any
// network hop. Garbage tokens fail here instead of costing a provider call.
func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", apperror.NewUnauthorized("missing Authorization header", nil)
	}

	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", apperror.NewUnauthorized("malformed Authorization header", nil)
	}

	if _, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{}); err != nil {
		return "", apperror.NewUnauthorized("malformed bearer token", err)
	}
	return token, nil
}
