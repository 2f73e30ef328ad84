package gameconfig_test

import (
	"testing"

	"github.com/limbo/lectio/internal/gameconfig"
	"github.com/limbo/lectio/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestFromValues(t *testing.T) {
	testCases := []struct {
		Desc   string
		Values map[string]string
		Result gameconfig.Settings
	}{
		{
			Desc:   "empty source gives defaults",
			Values: map[string]string{},
			Result: gameconfig.Defaults,
		},
		{
			Desc: "overrides",
			Values: map[string]string{
				gameconfig.KeyLevelDivisor:       "50",
				gameconfig.KeyBaseXPPerChapter:   "20",
				gameconfig.KeyXPPerMinuteReading: "1",
			},
			Result: func() gameconfig.Settings {
				s := gameconfig.Defaults
				s.LevelDivisor = 50
				s.BaseXP = 20
				s.XPPerMinuteReading = 1
				return s
			}(),
		},
		{
			Desc: "invalid values fall back",
			Values: map[string]string{
				gameconfig.KeyLevelDivisor:            "0",
				gameconfig.KeyStreakActiveBonusXP:     "five",
				gameconfig.KeySpeedReadingBonusXP:     "-3",
				gameconfig.KeySystemDailyGoalChapters: "",
			},
			Result: gameconfig.Defaults,
		},
		{
			Desc:   "unknown keys are ignored",
			Values: map[string]string{"welcome_banner": "hello"},
			Result: gameconfig.Defaults,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, gameconfig.FromValues(tc.Values, logger.NewNop()))
		})
	}
}

func TestRewardRules(t *testing.T) {
	rules := gameconfig.Defaults.RewardRules()
	assert.Equal(t, int64(10), rules.BaseXP)
	assert.Equal(t, int64(5), rules.StreakActiveBonusXP)
	assert.Equal(t, int64(3), rules.SpeedBonusXP)
	assert.Equal(t, 300, rules.SpeedThresholdSeconds)
	assert.Equal(t, int64(5), rules.LongStreakBonusXP)
	assert.Equal(t, 7, rules.LongStreakThresholdDays)
}
