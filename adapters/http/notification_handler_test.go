package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlorenzana/jobtrail/internal/application/usecase/notification"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

func notificationRouter(mailer *fakeMailer) *gin.Engine {
	svc := &fakeIdentityService{caller: defaultCaller()}
	uc := notification.NewDispatchUseCase(svc, mailer, logger.NewNop())
	handler := NewNotificationHandler(uc, logger.NewNop())

	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.POST("/send-notification", handler.Send)
	return router
}

func notificationBody(kind string) gin.H {
	return gin.H{
		"type": kind,
		"application": gin.H{
			"id":          "app-1",
			"company":     "Acme",
			"position":    "Engineer",
			"status":      "applied",
			"location":    "Remote",
			"appliedDate": "2024-03-01",
		},
	}
}

func TestSendNotification_MissingAuthorizationIs401(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	router := notificationRouter(mailer)

	rr := performJSON(t, router, http.MethodPost, "/send-notification", notificationBody("added"), nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Zero(t, mailer.sent)
}

func TestSendNotification_SkipIsSoftSuccess(t *testing.T) {
	mailer := &fakeMailer{configured: false}
	router := notificationRouter(mailer)

	rr := performJSON(t, router, http.MethodPost, "/send-notification", notificationBody("deleted"),
		map[string]string{"Authorization": "Bearer token"})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeJSON(t, rr)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["skipped"])
	assert.Zero(t, mailer.sent)
}

func TestSendNotification_Sends(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	router := notificationRouter(mailer)

	rr := performJSON(t, router, http.MethodPost, "/send-notification", notificationBody("added"),
		map[string]string{"Authorization": "Bearer token"})

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeJSON(t, rr)
	assert.Equal(t, true, resp["success"])
	assert.Nil(t, resp["skipped"])
	assert.Equal(t, 1, mailer.sent)
}

func TestSendNotification_UnknownTypeIs400(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	router := notificationRouter(mailer)

	rr := performJSON(t, router, http.MethodPost, "/send-notification", notificationBody("archived"),
		map[string]string{"Authorization": "Bearer token"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, mailer.sent)
}

func TestSendNotification_ProviderRejectionIs400(t *testing.T) {
	mailer := &fakeMailer{configured: true, sendErr: apperror.NewProvider("rejected recipient", nil)}
	router := notificationRouter(mailer)

	rr := performJSON(t, router, http.MethodPost, "/send-notification", notificationBody("added"),
		map[string]string{"Authorization": "Bearer token"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeJSON(t, rr)
	assert.Equal(t, "rejected recipient", resp["error"])
}

func TestSendNotification_MissingTypeIs400(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	router := notificationRouter(mailer)

	rr := performJSON(t, router, http.MethodPost, "/send-notification", gin.H{"application": gin.H{}},
		map[string]string{"Authorization": "Bearer token"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
