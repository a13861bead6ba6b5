package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fsdevblog/salesboard/internal/transport/api/middlewares"
)

const maxListLimit = 100

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// paramID разбирает положительный числовой параметр пути.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("invalid %s", name)).
			SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// queryLimit читает ?limit=. Некорректное или отсутствующее значение дает 0, что означает лимит по умолчанию.
func queryLimit(c *gin.Context) uint {
	limit, err := strconv.ParseUint(c.Query("limit"), 10, 32)
	if err != nil {
		return 0
	}
	return uint(min(limit, maxListLimit))
}

// abortWithBindError отвечает 400 с перечислением не прошедших валидацию полей.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		fields := make([]string, 0, len(valErrs))
		for _, fe := range valErrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		_ = c.AbortWithError(http.StatusBadRequest, fmt.Errorf("invalid fields: %s", strings.Join(fields, ", "))).
			SetType(gin.ErrorTypePublic)
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid request body")).
		SetType(gin.ErrorTypePublic)
}

// abortInternal скрывает детали ошибки от клиента, оставляя их в логе.
func abortInternal(c *gin.Context, err error) {
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

func abortPublic(c *gin.Context, status int, msg string) {
	_ = c.AbortWithError(status, errors.New(msg)).SetType(gin.ErrorTypePublic)
}
