package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BadgesHandler struct {
	badgeSvs BadgeServicer
}

func NewBadgesHandler(badgeSvs BadgeServicer) *BadgesHandler {
	return &BadgesHandler{badgeSvs: badgeSvs}
}

// Index GET RouteGroup + BadgesRoute. Весь каталог значков.
func (h *BadgesHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"badges": badgePayloads(h.badgeSvs.Catalog())})
}

// UserBadges GET RouteGroup + UserBadgesRoute. Разблокированные значки пользователя.
func (h *BadgesHandler) UserBadges(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	unlocked, err := h.badgeSvs.UserAchievements(reqCtx, userID)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": newUnlockedBadgesResponse(unlocked)})
}
