package gamification

import (
	"time"

	"github.com/limbo/lectio/pkg/entity"
)

// StreakState is the streak part of the user aggregate.
type StreakState struct {
	Current    int
	Longest    int
	LastReadAt *time.Time
}

// CalendarDay returns t's calendar date in loc as a UTC midnight.
func CalendarDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from `from` to `to` in loc. DST shifts do not matter.
func DaysBetween(from, to time.Time, loc *time.Location) int {
	return int(CalendarDay(to, loc).Sub(CalendarDay(from, loc)).Hours() / 24)
}

// AdvanceStreak applies one qualifying reading event at now.
//
//	never read   -> 1, started
//	same day     -> unchanged
//	next day     -> +1, extended
//	2+ days gap  -> 1, started
//
// Longest is raised to Current and LastReadAt moves to now in every case.
func AdvanceStreak(state StreakState, now time.Time, loc *time.Location) (StreakState, entity.StreakResult) {
	var res entity.StreakResult
	switch {
	case state.LastReadAt == nil:
		state.Current = 1
		res.StreakStarted = true
	default:
		d := DaysBetween(*state.LastReadAt, now, loc)
		switch {
		case d <= 0:
			// d < 0 only happens with a skewed clock; treat it as the same day
			if state.Current < 1 {
				state.Current = 1
				res.StreakStarted = true
			}
		case d == 1:
			state.Current++
			res.StreakExtended = true
		default:
			state.Current = 1
			res.StreakStarted = true
		}
	}
	if state.Current > state.Longest {
		state.Longest = state.Current
	}
	ts := now
	state.LastReadAt = &ts
	res.CurrentStreak = state.Current
	res.LongestStreak = state.Longest
	return state, res
}

// CheckStreakStatus reports whether a streak is alive at now. A streak survives
// exactly one day past the last active day: on that day it is at risk, after it is lost.
func CheckStreakStatus(state StreakState, now time.Time, loc *time.Location) entity.StreakStatus {
	if state.LastReadAt == nil || state.Current <= 0 {
		return entity.StreakStatus{}
	}
	d := DaysBetween(*state.LastReadAt, now, loc)
	switch {
	case d <= 0:
		return entity.StreakStatus{HasStreak: true, DaysRemaining: 1}
	case d == 1:
		return entity.StreakStatus{HasStreak: true, AtRisk: true}
	default:
		return entity.StreakStatus{Lost: true}
	}
}

// EffectiveStreak is the stored streak, or 0 once it is lost.
func EffectiveStreak(state StreakState, now time.Time, loc *time.Location) int {
	if CheckStreakStatus(state, now, loc).HasStreak {
		return state.Current
	}
	return 0
}
