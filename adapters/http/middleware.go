package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avlorenzana/jobtrail/internal/domain/identity"
	"github.com/avlorenzana/jobtrail/pkg/apperror"
	"github.com/avlorenzana/jobtrail/pkg/logger"
)

const GinContextKeyCaller = "caller"

// AuthMiddleware resolves the bearer token into a caller identity through
// the external identity service. No local token verification beyond a
// structural check happens here; the provider is the source of truth.
func AuthMiddleware(svc identity.Service, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {

		caller, err := svc.ResolveCaller(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			status := apperror.ToHTTPStatus(err)
			if status == http.StatusInternalServerError {
				log.Error("Identity resolution failed", err)
				c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(GinContextKeyCaller, *caller)

		c.Next()
	}
}

func GetCallerFromGinContext(c *gin.Context) (identity.Identity, bool) {
	value, ok := c.Get(GinContextKeyCaller)
	if !ok {
		return identity.Identity{}, false
	}
	caller, ok := value.(identity.Identity)
	return caller, ok
}

// ErrorMiddleware turns errors attached by handlers into JSON responses.
// Internal detail goes to the log, never over the wire.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status == http.StatusInternalServerError {
				log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
				c.JSON(status, gin.H{"error": "internal server error"})
				return
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
