package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/salesboard/internal/domain"
)

type SystemHandler struct {
	adminSvs AdminServicer
	ws       WSServer
}

func NewSystemHandler(adminSvs AdminServicer, ws WSServer) *SystemHandler {
	return &SystemHandler{adminSvs: adminSvs, ws: ws}
}

// Health GET RouteGroup + HealthRoute.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
}

type ResetParams struct {
	Secret string `binding:"required" json:"secret"`
}

// Reset POST RouteGroup + AdminResetRoute. Полная очистка данных соревнования по секрету.
func (h *SystemHandler) Reset(c *gin.Context) {
	var params ResetParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortPublic(c, http.StatusForbidden, "Unauthorized")
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.adminSvs.Reset(reqCtx, params.Secret); err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			abortPublic(c, http.StatusForbidden, "Unauthorized")
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database reset complete"})
}

// WS GET WSRoute. Подписка на события соревнования.
func (h *SystemHandler) WS(c *gin.Context) {
	if err := h.ws.ServeWS(c.Writer, c.Request); err != nil {
		// Upgrader уже ответил клиенту ошибкой.
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.Abort()
	}
}
