package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avlorenzana/jobtrail/internal/application/usecase/signup"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

type AuthHandler struct {
	signUpUseCase *signup.SignUpUseCase
	logger        logger.Logger
}

func NewAuthHandler(uc *signup.SignUpUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		signUpUseCase: uc,
		logger:        log,
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for signup", err))
		return
	}

	input := signup.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}

	output, err := h.signUpUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":    ToIdentityDTO(output.Identity),
		"message": "Account created successfully",
	})
}
