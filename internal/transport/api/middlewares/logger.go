package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет одну запись на запрос. Приватные ошибки обработчиков попадают в лог, но не в ответ.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := l.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"size":     c.Writer.Size(),
			"ip":       c.ClientIP(),
		})

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("request failed")
			return
		}
		if c.Writer.Status() >= 500 { //nolint:mnd
			entry.Error("request failed")
			return
		}
		entry.Info("request")
	}
}
