package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

// Standing строка рейтинга, как она приходит из хранилища.
type Standing struct {
	UserID        int64
	Name          string
	AvatarColor   string
	CreatedAt     time.Time
	LastActive    time.Time
	TotalEarnings decimal.Decimal
	TotalDeals    int64
	DaysActive    int64
}
