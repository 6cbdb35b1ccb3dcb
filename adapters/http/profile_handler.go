package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/avlorenzana/jobtrail/internal/application/usecase/profile"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.GetProfileInput{OwnerID: caller.ID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPersonalInfoDTO(output.Profile))
}

func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	caller, ok := GetCallerFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("caller not found in context", nil))
		return
	}

	var req SavePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile save", err))
		return
	}

	input := profileUC.SaveProfileInput{
		OwnerID: caller.ID,
		Info:    req.ToDomain(),
	}

	output, err := h.profileUseCase.ExecuteSaveProfile(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPersonalInfoDTO(output.Profile))
}
