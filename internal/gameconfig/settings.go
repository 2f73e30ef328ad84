package gameconfig

import (
	"strconv"

	"github.com/limbo/lectio/internal/gamification"
	"github.com/limbo/lectio/pkg/logger"
)

const (
	KeyLevelDivisor                 = "level_formula_divisor"
	KeyBaseXPPerChapter             = "base_xp_per_chapter"
	KeyStreakActiveBonusXP          = "streak_active_bonus_xp"
	KeySpeedReadingBonusXP          = "speed_reading_bonus_xp"
	KeySpeedReadingThresholdSeconds = "speed_reading_threshold_seconds"
	KeyLongStreakBonusXP            = "long_streak_bonus_xp"
	KeyLongStreakThresholdDays      = "long_streak_threshold_days"
	KeyXPPerMinuteReading           = "xp_per_minute_reading"
	KeySystemDailyGoalChapters      = "system_daily_goal_chapters"
)

// Settings is one consistent snapshot of the game balance parameters.
type Settings struct {
	LevelDivisor                 int
	BaseXP                       int64
	StreakActiveBonusXP          int64
	SpeedReadingBonusXP          int64
	SpeedReadingThresholdSeconds int
	LongStreakBonusXP            int64
	LongStreakThresholdDays      int
	XPPerMinuteReading           int64
	SystemDailyGoalChapters      int
}

var Defaults = Settings{
	LevelDivisor:                 gamification.DefaultLevelDivisor,
	BaseXP:                       10,
	StreakActiveBonusXP:          5,
	SpeedReadingBonusXP:          3,
	SpeedReadingThresholdSeconds: 300,
	LongStreakBonusXP:            5,
	LongStreakThresholdDays:      7,
	XPPerMinuteReading:           10,
	SystemDailyGoalChapters:      1,
}

func (s Settings) RewardRules() gamification.RewardRules {
	return gamification.RewardRules{
		BaseXP:                  s.BaseXP,
		StreakActiveBonusXP:     s.StreakActiveBonusXP,
		SpeedBonusXP:            s.SpeedReadingBonusXP,
		SpeedThresholdSeconds:   s.SpeedReadingThresholdSeconds,
		LongStreakBonusXP:       s.LongStreakBonusXP,
		LongStreakThresholdDays: s.LongStreakThresholdDays,
	}
}

// FromValues overlays raw key/value pairs on Defaults. Absent keys keep their default,
// malformed or out of range ones are logged and ignored. Unknown keys are skipped silently.
func FromValues(values map[string]string, log *logger.Logger) Settings {
	s := Defaults
	fields := []struct {
		key string
		min int64
		set func(int64)
	}{
		{KeyLevelDivisor, 1, func(v int64) { s.LevelDivisor = int(v) }},
		{KeyBaseXPPerChapter, 0, func(v int64) { s.BaseXP = v }},
		{KeyStreakActiveBonusXP, 0, func(v int64) { s.StreakActiveBonusXP = v }},
		{KeySpeedReadingBonusXP, 0, func(v int64) { s.SpeedReadingBonusXP = v }},
		{KeySpeedReadingThresholdSeconds, 0, func(v int64) { s.SpeedReadingThresholdSeconds = int(v) }},
		{KeyLongStreakBonusXP, 0, func(v int64) { s.LongStreakBonusXP = v }},
		{KeyLongStreakThresholdDays, 1, func(v int64) { s.LongStreakThresholdDays = int(v) }},
		{KeyXPPerMinuteReading, 0, func(v int64) { s.XPPerMinuteReading = v }},
		{KeySystemDailyGoalChapters, 1, func(v int64) { s.SystemDailyGoalChapters = int(v) }},
	}
	for _, f := range fields {
		raw, ok := values[f.key]
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < f.min {
			if log != nil {
				log.Warn("ignoring invalid game config value", "key", f.key, "value", raw)
			}
			continue
		}
		f.set(v)
	}
	return s
}
