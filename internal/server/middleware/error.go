package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/provider-gateway/internal/gateway"
	"github.com/nulzo/provider-gateway/pkg/api"
	"go.uber.org/zap"
)

// ErrorHandler translates errors attached by handlers into wire responses:
// RFC 9457 Problems pass through, gateway errors map by kind, everything
// else becomes a 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var problem *api.Problem
		if errors.As(err, &problem) {
			if problem.Log != nil {
				logger.Error("Request failed", zap.Error(problem.Log))
			}
			c.JSON(problem.Status, problem)
			c.Abort()
			return
		}

		var gerr *gateway.Error
		if errors.As(err, &gerr) {
			c.JSON(statusForKind(gerr.Kind), problemForGatewayError(gerr))
			c.Abort()
			return
		}

		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError,
			api.InternalError("An unexpected error occurred."))
		c.Abort()
	}
}

func statusForKind(kind gateway.ErrorKind) int {
	switch kind {
	case gateway.KindUnknownModel:
		return http.StatusNotFound
	case gateway.KindProvider, gateway.KindParse:
		return http.StatusBadGateway
	case gateway.KindConfiguration:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func problemForGatewayError(gerr *gateway.Error) *api.Problem {
	return api.NewProblem(
		statusForKind(gerr.Kind),
		"Generation Failed",
		gerr.Message,
		api.WithExtension("kind", string(gerr.Kind)),
		api.WithExtension("model", gerr.ModelID),
	)
}
