package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlorenzana/jobtrail/internal/application/usecase/signup"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

func signUpRouter(svc *fakeIdentityService) *gin.Engine {
	uc := signup.NewSignUpUseCase(svc, logger.NewNop())
	handler := NewAuthHandler(uc, logger.NewNop())

	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.POST("/signup", handler.SignUp)
	return router
}

func TestSignUp_Created(t *testing.T) {
	svc := &fakeIdentityService{}
	router := signUpRouter(svc)

	rr := performJSON(t, router, http.MethodPost, "/signup",
		gin.H{"email": "jo@example.com", "password": "hunter22", "name": "Jo"}, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeJSON(t, rr)
	assert.Equal(t, "Account created successfully", resp["message"])

	user, ok := resp["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "jo@example.com", user["email"])
}

func TestSignUp_DuplicateEmailIs400AndCreatesNothing(t *testing.T) {
	svc := &fakeIdentityService{signUpErr: apperror.NewProvider("A user with this email address has already been registered", nil)}
	router := signUpRouter(svc)

	rr := performJSON(t, router, http.MethodPost, "/signup",
		gin.H{"email": "jo@example.com", "password": "hunter22", "name": "Jo"}, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decodeJSON(t, rr)
	assert.Equal(t, "A user with this email address has already been registered", resp["error"])
	assert.Equal(t, 1, svc.signUpSeen)
}

func TestSignUp_MissingFieldsIs400(t *testing.T) {
	svc := &fakeIdentityService{}
	router := signUpRouter(svc)

	rr := performJSON(t, router, http.MethodPost, "/signup", gin.H{"email": "jo@example.com"}, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, svc.signUpSeen)
}

func TestSignUp_TransportFailureIs500(t *testing.T) {
	svc := &fakeIdentityService{signUpErr: apperror.NewInternal("identity service unreachable", nil)}
	router := signUpRouter(svc)

	rr := performJSON(t, router, http.MethodPost, "/signup",
		gin.H{"email": "jo@example.com", "password": "hunter22"}, nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	resp := decodeJSON(t, rr)
	assert.Equal(t, "internal server error", resp["error"])
}
