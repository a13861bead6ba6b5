package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSale struct {
	UserID      int64
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// SalesAggregate агрегаты по всем продажам пользователя. LargestDeal и LastSaleAt пусты, если продаж нет.
type SalesAggregate struct {
	TotalDeals    int64
	TotalEarnings decimal.Decimal
	LargestDeal   decimal.NullDecimal
	LastSaleAt    *time.Time
}

// DailyActivityDelta аддитивное изменение агрегата за дату. При удалении продажи значения отрицательные.
type DailyActivityDelta struct {
	UserID   int64
	Date     time.Time
	Earnings decimal.Decimal
	Deals    int64
}
