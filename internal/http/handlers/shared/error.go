package shared

import (
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/i18n"
	"github.com/cayro-uniformes/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog log con request_id cuando el middleware lo dejó en contexto.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// Locale idioma resuelto de la petición.
func Locale(c *gin.Context) string {
	if c == nil {
		return i18n.ResolveLocale("")
	}
	return i18n.ResolveLocale(c.GetHeader("Accept-Language"))
}

// RespondError responde con mensaje localizado y registra el error
// original si existe.
func RespondError(c *gin.Context, code int, key string, err error) {
	msg := i18n.T(Locale(c), key)
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}
