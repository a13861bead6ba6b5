package repoargs

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/domain"
)

type CreateFeedEntry struct {
	UserID  int64
	Type    domain.FeedEntryType
	Message string
	Amount  decimal.NullDecimal
}

type CreateMessage struct {
	FromUserID int64
	ToUserID   *int64
	Text       string
	Type       string
}
