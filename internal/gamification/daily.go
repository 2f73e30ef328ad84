package gamification

import "github.com/limbo/lectio/pkg/entity"

// GoalView caps progress at the goal and the percentage at 100.
func GoalView(goal, chaptersRead int, xpEarned, secondsRead int64) entity.DailyGoalView {
	if goal < 1 {
		goal = 1
	}
	if chaptersRead < 0 {
		chaptersRead = 0
	}
	return entity.DailyGoalView{
		Goal:              goal,
		Progress:          min(chaptersRead, goal),
		Percentage:        min(100, 100*chaptersRead/goal),
		ChaptersRemaining: max(0, goal-chaptersRead),
		XPEarnedToday:     xpEarned,
		SecondsReadToday:  secondsRead,
		GoalCompleted:     chaptersRead >= goal,
	}
}

// NewlyEligibleMinutes is the number of whole reading minutes not yet converted to XP.
// Leftover seconds below a minute stay in timeReading and are picked up by a later call.
func NewlyEligibleMinutes(timeReadingSeconds, timeXPAwardedSeconds int64) int64 {
	delta := timeReadingSeconds/60 - timeXPAwardedSeconds/60
	if delta < 0 {
		return 0
	}
	return delta
}
