package service

import (
	"slices"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// civilDay номер календарного дня t в его собственной таймзоне.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// CalculateStreak считает серию дней с продажами. Даты идут от самой поздней к ранней, каждая следующая
// продлевает серию, если отстоит от предыдущей (на старте от today) не более чем на один день.
// Серия не обязана заканчиваться сегодня: вчерашняя продажа без сегодняшней все еще держит серию.
func CalculateStreak(dates []time.Time, today time.Time) int {
	days := make([]int64, 0, len(dates))
	for _, d := range dates {
		days = append(days, civilDay(d))
	}
	slices.Sort(days)
	days = slices.Compact(days)
	slices.Reverse(days)

	streak := 0
	cursor := civilDay(today)
	for _, day := range days {
		if cursor-day > 1 {
			break
		}
		streak++
		cursor = day
	}
	return streak
}
