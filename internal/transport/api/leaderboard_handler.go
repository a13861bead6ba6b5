package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/salesboard/internal/domain"
)

type LeaderboardHandler struct {
	lbSvs LeaderboardServicer
}

func NewLeaderboardHandler(lbSvs LeaderboardServicer) *LeaderboardHandler {
	return &LeaderboardHandler{lbSvs: lbSvs}
}

// Index GET RouteGroup + LeaderboardRoute.
func (h *LeaderboardHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	lb, err := h.lbSvs.Get(reqCtx)
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, newLeaderboardResponse(lb))
}

// Profile GET RouteGroup + UserProfileRoute.
func (h *LeaderboardHandler) Profile(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	profile, err := h.lbSvs.UserProfile(reqCtx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			abortPublic(c, http.StatusNotFound, "User not found")
			return
		}
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(profile))
}
