package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avlorenzana/jobtrail/internal/application/usecase/notification"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type NotificationHandler struct {
	dispatchUseCase *notification.DispatchUseCase
	logger          logger.Logger
}

func NewNotificationHandler(uc *notification.DispatchUseCase, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		dispatchUseCase: uc,
		logger:          log,
	}
}

// Send handles POST /send-notification. The route does its own caller
// resolution inside the use case (the Authorization header travels in the
// input), so it is registered outside the auth middleware group.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req SendNotificationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for notification", err))
		return
	}

	input := notification.DispatchInput{
		AuthorizationHeader: c.GetHeader("Authorization"),
		Kind:                req.Type,
		Application:         req.ToDomainApplication(),
	}

	output, err := h.dispatchUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	// A skip is still a success envelope: the caller's CRUD operation
	// already completed and must not look failed.
	resp := gin.H{
		"success": true,
		"message": output.Message,
	}
	if output.Skipped {
		resp["skipped"] = true
	}
	c.JSON(http.StatusOK, resp)
}
