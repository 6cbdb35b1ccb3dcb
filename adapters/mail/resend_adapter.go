package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/avlorenzana/jobtrail/internal/application/service"
	"github.com/avlorenzana/jobtrail/internal/config"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendAdapter sends through the Resend API. An empty API key is a valid
// configuration: Configured reports false and the dispatcher skips sending.
type resendAdapter struct {
	apiKey     string
	from       string
	endpoint   string
	httpClient *http.Client
	logger     logger.Logger
}

func NewResendAdapter(cfg config.Config, logger logger.Logger) service.Mailer {
	if cfg.Mail.ResendAPIKey == "" {
		log.Println("RESEND_API_KEY not configured. Email notifications will be skipped.")
	}

	return &resendAdapter{
		apiKey:     cfg.Mail.ResendAPIKey,
		from:       cfg.Mail.From,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}
}

func (a *resendAdapter) Configured() bool {
	return a.apiKey != ""
}

func (a *resendAdapter) Send(ctx context.Context, to, subject, htmlBody string) error {
	body, err := json.Marshal(map[string]any{
		"from":    a.from,
		"to":      []string{to},
		"subject": subject,
		"html":    htmlBody,
	})
	if err != nil {
		return apperror.NewInternal("failed to marshal mail request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return apperror.NewInternal("failed to build mail request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return apperror.NewInternal("mail provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(resp.Body)
		var provErr struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(payload, &provErr)
		if provErr.Message == "" {
			provErr.Message = "Failed to send email"
		}
		return apperror.NewProvider(provErr.Message, nil)
	}
	return nil
}
