package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/salesboard/internal/domain"
	"github.com/fsdevblog/salesboard/internal/service"
)

type FeedHandler struct {
	feedSvs FeedServicer
}

func NewFeedHandler(feedSvs FeedServicer) *FeedHandler {
	return &FeedHandler{feedSvs: feedSvs}
}

// Index GET RouteGroup + FeedRoute.
func (h *FeedHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.feedSvs.Recent(reqCtx, queryLimit(c))
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feed": newFeedResponse(entries)})
}

// Messages GET RouteGroup + MessagesRoute.
func (h *FeedHandler) Messages(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	messages, err := h.feedSvs.RecentMessages(reqCtx, queryLimit(c))
	if err != nil {
		abortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": newMessagesResponse(messages)})
}

type PostMessageParams struct {
	Message  string `binding:"max_bytes=2000"        json:"message"`
	ToUserID *int64 `binding:"omitempty,gt=0"        json:"toUserId"`
	Type     string `binding:"omitempty,max=20"      json:"type"`
}

// PostMessage POST RouteGroup + MessagesRoute. Сообщение от текущего пользователя всем участникам.
func (h *FeedHandler) PostMessage(c *gin.Context) {
	var params PostMessageParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	msg, err := h.feedSvs.PostMessage(reqCtx, service.PostMessageArgs{
		FromUserID: getUserIDFromContext(c),
		ToUserID:   params.ToUserID,
		Text:       params.Message,
		Type:       params.Type,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidMessage):
			abortPublic(c, http.StatusBadRequest, publicMessage(err, domain.ErrInvalidMessage))
		case errors.Is(err, domain.ErrRecordNotFound):
			abortPublic(c, http.StatusNotFound, "User not found")
		default:
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": domain.NewMessagePayload(*msg)})
}

// Quote GET RouteGroup + QuoteRoute.
func (h *FeedHandler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": h.feedSvs.Quote()})
}

// publicMessage отрезает от текста ошибки префикс sentinel, оставляя пояснение для клиента.
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	if _, after, found := strings.Cut(msg, sentinel.Error()+": "); found {
		return after
	}
	return msg
}
