package gamification

const (
	BonusStreak     = "streak"
	BonusSpeed      = "speed"
	BonusLongStreak = "long_streak"
)

type RewardRules struct {
	BaseXP                  int64
	StreakActiveBonusXP     int64
	SpeedBonusXP            int64
	SpeedThresholdSeconds   int
	LongStreakBonusXP       int64
	LongStreakThresholdDays int
}

type Reward struct {
	Base   int64
	Bonus  int64
	Total  int64
	Labels []string
}

// ChapterReward adds up the base XP and every bonus that applies. Bonuses are independent.
func ChapterReward(rules RewardRules, currentStreak, readingTimeSeconds int) Reward {
	r := Reward{Base: rules.BaseXP, Labels: make([]string, 0, 3)}
	if currentStreak > 0 {
		r.Bonus += rules.StreakActiveBonusXP
		r.Labels = append(r.Labels, BonusStreak)
	}
	if readingTimeSeconds < rules.SpeedThresholdSeconds {
		r.Bonus += rules.SpeedBonusXP
		r.Labels = append(r.Labels, BonusSpeed)
	}
	if currentStreak >= rules.LongStreakThresholdDays {
		r.Bonus += rules.LongStreakBonusXP
		r.Labels = append(r.Labels, BonusLongStreak)
	}
	r.Total = r.Base + r.Bonus
	return r
}
