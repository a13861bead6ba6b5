package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusConflict:
		return "conflict"
	default:
		return "internal server error"
	}
}

func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		// обработчик уже записал тело ответа, ошибка нужна только для лога.
		// AbortWithError пишет только заголовок, поэтому Written() здесь не подходит.
		if c.Writer.Size() > 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(c.Writer.Status())
		}

		// API отвечает JSON, текст только по явному запросу клиента.
		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(c.Writer.Status(), msg)
		} else {
			c.JSON(c.Writer.Status(), gin.H{"error": msg})
		}
		c.Abort()
	}
}
