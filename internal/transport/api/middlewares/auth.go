package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/salesboard/internal/service/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentUserIDKey = "currentUserID"

// checkAuthorization извлекает токен из заголовка Authorization и возвращает id юзера из него. Если токен
// не передан, вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (int64, error) {
	tokenHeader := c.GetHeader("Authorization")
	tokenStr, ok := strings.CutPrefix(tokenHeader, "Bearer ")
	if !ok || tokenStr == "" {
		return 0, ErrTokenNotExist
	}

	userID, err := tokens.UserIDFromJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return 0, fmt.Errorf("check authorization: %w", err)
	}
	return userID, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст (поле CurrentUserIDKey) id юзера.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			msg := "Not authenticated"
			switch {
			case errors.Is(err, tokens.ErrTokenExpired):
				msg = "Token expired"
			case !errors.Is(err, ErrTokenNotExist):
				msg = "Invalid token"
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		c.Set(CurrentUserIDKey, userID)
		c.Next()
	}
}

// NonAuthRequired пропускает только запросы без токена или с недействительным токеном.
func NonAuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := checkAuthorization(c, jwtTokenSecret); err == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Already authorized"})
			return
		}
		c.Next()
	}
}
