package table

import "time"

// DefaultBigBlind is the big blind used when no schedule is configured
const DefaultBigBlind = 20

// BlindSchedule returns the big blind for a given day of the week. The
// small blind is always half the big blind. Blinds are looked up fresh at
// the start of every round.
type BlindSchedule func(day time.Weekday) int

// FixedBlinds returns a schedule with the same big blind every day
func FixedBlinds(bigBlind int) BlindSchedule {
	return func(time.Weekday) int {
		return bigBlind
	}
}

// WeekdaySchedule returns a schedule backed by a per-day lookup, falling
// back to the provided default for unlisted days
func WeekdaySchedule(byDay map[time.Weekday]int, fallback int) BlindSchedule {
	return func(day time.Weekday) int {
		if bb, ok := byDay[day]; ok && bb > 0 {
			return bb
		}

		return fallback
	}
}
