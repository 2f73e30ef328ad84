// Package gamification holds the pure rules of the reading engine: the level
// curve, the streak state machine, chapter rewards, daily goal views and
// chapter unlocking. Nothing here touches storage or the wall clock.
package gamification

import (
	"math"

	"github.com/limbo/lectio/pkg/entity"
)

const DefaultLevelDivisor = 100

func divisorOrDefault(divisor int) int64 {
	if divisor <= 0 {
		return DefaultLevelDivisor
	}
	return int64(divisor)
}

// Level returns floor(sqrt(totalXP / divisor)).
// floor(sqrt(floor(x))) == floor(sqrt(x)) for x >= 0, so integer division is exact here.
func Level(totalXP int64, divisor int) int {
	if totalXP <= 0 {
		return 0
	}
	return int(isqrt(totalXP / divisorOrDefault(divisor)))
}

// XPForLevel returns the cumulative XP required to reach level n.
func XPForLevel(n int, divisor int) int64 {
	if n <= 0 {
		return 0
	}
	l := int64(n)
	return l * l * divisorOrDefault(divisor)
}

// ProgressToNext describes where totalXP sits between the current level and the next one.
func ProgressToNext(totalXP int64, divisor int) entity.LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := Level(totalXP, divisor)
	floor := XPForLevel(level, divisor)
	next := XPForLevel(level+1, divisor)
	return entity.LevelProgress{
		CurrentLevel:     level,
		XPIntoLevel:      totalXP - floor,
		XPNeededForLevel: next - floor,
		XPRemaining:      next - totalXP,
	}
}

func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(math.Sqrt(float64(n)))
	// float64 loses precision above 2^53
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
