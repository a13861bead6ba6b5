package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	CreatedAt    time.Time
	LastActive   time.Time
	Email        string
	Name         string
	AvatarColor  string
	PasswordHash string
}

// Sale запись журнала продаж. После создания не изменяется, может быть только удалена владельцем.
type Sale struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	Amount      decimal.Decimal
	Description string
}

// DailyActivity агрегат продаж пользователя за календарную дату в опорной таймзоне.
type DailyActivity struct {
	UserID     int64
	Date       time.Time
	Earnings   decimal.Decimal
	DealsCount int64
}

type Achievement struct {
	UserID     int64
	BadgeID    string
	UnlockedAt time.Time
}

type FeedEntry struct {
	ID          int64
	CreatedAt   time.Time
	UserID      int64
	UserName    string
	AvatarColor string
	Type        FeedEntryType
	Message     string
	Amount      decimal.NullDecimal
}

type Message struct {
	ID            int64
	CreatedAt     time.Time
	FromUserID    int64
	FromUserName  string
	FromUserColor string
	ToUserID      *int64
	ToUserName    *string
	Text          string
	Type          string
}

// AggregateStats производная сводка по журналу продаж одного пользователя.
// LargestDeal невалиден, а LastSaleHour равен nil, если продаж нет.
type AggregateStats struct {
	UserID        int64
	TotalDeals    int64
	TotalEarnings decimal.Decimal
	LargestDeal   decimal.NullDecimal
	TodayEarnings decimal.Decimal
	StreakDays    int
	LastSaleHour  *int
}

// HasSales сообщает, есть ли у пользователя хотя бы одна продажа.
func (s AggregateStats) HasSales() bool {
	return s.TotalDeals > 0
}
