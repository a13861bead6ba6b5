package service

import "time"

// Clock источник текущего времени в опорной таймзоне. Все расчеты "сегодня" и серий идут через него.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type LocalClock struct {
	loc *time.Location
}

func NewLocalClock(loc *time.Location) LocalClock {
	if loc == nil {
		loc = time.UTC
	}
	return LocalClock{loc: loc}
}

func (c LocalClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c LocalClock) Location() *time.Location {
	return c.loc
}
