// Package badges содержит статический каталог значков и их условия разблокировки.
package badges

import (
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/salesboard/internal/domain"
)

// Version версия каталога. Каталог фиксируется при деплое и не меняется во время работы.
const Version = "v1"

const (
	FirstSale    = "first_sale"
	HundredClub  = "hundred_club"
	BigFish      = "big_fish"
	Whale        = "whale"
	ThousandDay  = "thousand_day"
	FiveThousand = "five_thousand"
	TenThousand  = "ten_thousand"
	DealMachine  = "deal_machine"
	TwentyDeals  = "twenty_deals"
	Streak3      = "streak_3"
	Streak7      = "streak_7"
	EarlyBird    = "early_bird"
	NightOwl     = "night_owl"
)

type Badge struct {
	ID          string
	Name        string
	Description string
	Emoji       string
	Color       string
}

func (b Badge) Payload() domain.BadgePayload {
	return domain.BadgePayload{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Emoji:       b.Emoji,
		Color:       b.Color,
	}
}

// Predicate чистая функция от снимка статистики.
type Predicate func(stats domain.AggregateStats) bool

// Rule пара значок + условие его разблокировки.
type Rule struct {
	Badge    Badge
	Eligible Predicate
}

var rules = []Rule{
	{
		Badge:    Badge{ID: FirstSale, Name: "First Blood", Description: "Close your first deal", Emoji: "🎯", Color: "#22c55e"},
		Eligible: minDeals(1),
	},
	{
		Badge:    Badge{ID: HundredClub, Name: "Hundred Club", Description: "Close a deal worth $100+", Emoji: "💵", Color: "#4ade80"},
		Eligible: minLargestDeal(100),
	},
	{
		Badge:    Badge{ID: BigFish, Name: "Big Fish", Description: "Close a deal worth $500+", Emoji: "🐋", Color: "#0ea5e9"},
		Eligible: minLargestDeal(500),
	},
	{
		Badge:    Badge{ID: Whale, Name: "Whale Hunter", Description: "Close a deal worth $1,000+", Emoji: "🐳", Color: "#14b8a6"},
		Eligible: minLargestDeal(1000),
	},
	{
		Badge:    Badge{ID: ThousandDay, Name: "$1K Day", Description: "Earn $1,000 in a single day", Emoji: "🔥", Color: "#f59e0b"},
		Eligible: minTodayEarnings(1000),
	},
	{
		Badge:    Badge{ID: FiveThousand, Name: "Halfway Hero", Description: "Reach $5,000 total earnings", Emoji: "⭐", Color: "#8b5cf6"},
		Eligible: minTotalEarnings(5000),
	},
	{
		Badge:    Badge{ID: TenThousand, Name: "Goal Crusher", Description: "Reach the $10,000 goal!", Emoji: "🏆", Color: "#fbbf24"},
		Eligible: minTotalEarnings(10000),
	},
	{
		Badge:    Badge{ID: DealMachine, Name: "Deal Machine", Description: "Close 10 deals", Emoji: "⚡", Color: "#3b82f6"},
		Eligible: minDeals(10),
	},
	{
		Badge:    Badge{ID: TwentyDeals, Name: "Sales Warrior", Description: "Close 20 deals", Emoji: "⚔️", Color: "#ef4444"},
		Eligible: minDeals(20),
	},
	{
		Badge:    Badge{ID: Streak3, Name: "Hat Trick", Description: "3-day sales streak", Emoji: "🎩", Color: "#06b6d4"},
		Eligible: minStreak(3),
	},
	{
		Badge:    Badge{ID: Streak7, Name: "Week Warrior", Description: "7-day sales streak", Emoji: "🗓️", Color: "#ec4899"},
		Eligible: minStreak(7),
	},
	{
		Badge:    Badge{ID: EarlyBird, Name: "Early Bird", Description: "Log a sale before 9 AM", Emoji: "🐦", Color: "#fcd34d"},
		Eligible: lastSaleHour(func(hour int) bool { return hour < 9 }), //nolint:mnd
	},
	{
		Badge:    Badge{ID: NightOwl, Name: "Night Owl", Description: "Log a sale after 9 PM", Emoji: "🦉", Color: "#6366f1"},
		Eligible: lastSaleHour(func(hour int) bool { return hour >= 21 }), //nolint:mnd
	},
}

var index = func() map[string]Badge {
	m := make(map[string]Badge, len(rules))
	for _, r := range rules {
		m[r.Badge.ID] = r.Badge
	}
	return m
}()

// Rules возвращает копию каталога в порядке отображения.
func Rules() []Rule {
	res := make([]Rule, len(rules))
	copy(res, rules)
	return res
}

// All возвращает все значки каталога в порядке отображения.
func All() []Badge {
	res := make([]Badge, len(rules))
	for i, r := range rules {
		res[i] = r.Badge
	}
	return res
}

func Lookup(id string) (Badge, bool) {
	b, ok := index[id]
	return b, ok
}

// Evaluate сворачивает каталог по снимку статистики и возвращает все значки, условия которых выполнены.
// Порядок результата совпадает с порядком каталога.
func Evaluate(stats domain.AggregateStats) []Badge {
	var eligible []Badge
	for _, r := range rules {
		if r.Eligible(stats) {
			eligible = append(eligible, r.Badge)
		}
	}
	return eligible
}

func minDeals(n int64) Predicate {
	return func(s domain.AggregateStats) bool {
		return s.TotalDeals >= n
	}
}

// minLargestDeal не выполняется, если продаж нет (LargestDeal невалиден).
func minLargestDeal(amount int64) Predicate {
	threshold := decimal.NewFromInt(amount)
	return func(s domain.AggregateStats) bool {
		return s.LargestDeal.Valid && s.LargestDeal.Decimal.GreaterThanOrEqual(threshold)
	}
}

func minTodayEarnings(amount int64) Predicate {
	threshold := decimal.NewFromInt(amount)
	return func(s domain.AggregateStats) bool {
		return s.TodayEarnings.GreaterThanOrEqual(threshold)
	}
}

func minTotalEarnings(amount int64) Predicate {
	threshold := decimal.NewFromInt(amount)
	return func(s domain.AggregateStats) bool {
		return s.TotalEarnings.GreaterThanOrEqual(threshold)
	}
}

func minStreak(days int) Predicate {
	return func(s domain.AggregateStats) bool {
		return s.StreakDays >= days
	}
}

func lastSaleHour(cond func(hour int) bool) Predicate {
	return func(s domain.AggregateStats) bool {
		if !s.HasSales() || s.LastSaleHour == nil {
			return false
		}
		return cond(*s.LastSaleHour)
	}
}
