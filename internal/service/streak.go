package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lectio/internal/gamification"
	"github.com/limbo/lectio/internal/repository"
	"github.com/limbo/lectio/pkg/entity"
)

func streakState(user *entity.User) gamification.StreakState {
	return gamification.StreakState{
		Current:    user.CurrentStreak,
		Longest:    user.LongestStreak,
		LastReadAt: user.LastReadAt,
	}
}

// updateStreak advances the streak for a qualifying reading event and settles an active
// streak goal once it is reached.
func (rs *ReadingService) updateStreak(ctx context.Context, repos *repository.Repositories, user *entity.User, now time.Time) (entity.StreakResult, error) {
	state, res := gamification.AdvanceStreak(streakState(user), now, rs.clk.Location())
	user.CurrentStreak = state.Current
	user.LongestStreak = state.Longest
	user.LastReadAt = state.LastReadAt
	if user.StreakGoal != nil && user.CurrentStreak >= *user.StreakGoal {
		goal := *user.StreakGoal
		user.LastStreakGoalCompleted = &goal
		user.StreakGoal = nil
		user.StreakGoalStartedAt = nil
		res.StreakGoalCompleted = true
		rs.log.Info("streak goal completed", "uid", user.ID, "goal", goal)
	}
	if err := repos.Users.UpdateStreak(ctx, user); err != nil {
		return entity.StreakResult{}, err
	}
	return res, nil
}

func (rs *ReadingService) streakStats(user *entity.User, now time.Time) *entity.StreakStats {
	state := streakState(user)
	loc := rs.clk.Location()
	return &entity.StreakStats{
		CurrentStreak:           gamification.EffectiveStreak(state, now, loc),
		LongestStreak:           user.LongestStreak,
		LastReadAt:              user.LastReadAt,
		Status:                  gamification.CheckStreakStatus(state, now, loc),
		StreakGoal:              user.StreakGoal,
		StreakGoalStartedAt:     user.StreakGoalStartedAt,
		LastStreakGoalCompleted: user.LastStreakGoalCompleted,
	}
}

func (rs *ReadingService) GetStreakStats(ctx context.Context, uid uuid.UUID) (*entity.StreakStats, error) {
	var stats *entity.StreakStats
	err := rs.inTx(ctx, "getting streak stats", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.FindByID(ctx, uid)
		if err != nil {
			return err
		}
		stats = rs.streakStats(user, rs.clk.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// SetStreakGoal starts a streak challenge. The goal has to be above both the live streak
// and the last completed goal.
func (rs *ReadingService) SetStreakGoal(ctx context.Context, uid uuid.UUID, req *StreakGoalRequest) (*entity.StreakStats, error) {
	if req == nil {
		return nil, validationError("empty request")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	var stats *entity.StreakStats
	err := rs.inTx(ctx, "setting streak goal", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.LockByID(ctx, uid)
		if err != nil {
			return err
		}
		now := rs.clk.Now()
		if current := gamification.EffectiveStreak(streakState(user), now, rs.clk.Location()); req.Goal <= current {
			return validationError("streak goal must exceed current streak")
		}
		if user.LastStreakGoalCompleted != nil && req.Goal <= *user.LastStreakGoalCompleted {
			return validationError("streak goal must exceed last completed streak goal")
		}
		if err := repos.Users.UpdateStreakGoal(ctx, uid, req.Goal, now); err != nil {
			return err
		}
		goal := req.Goal
		user.StreakGoal = &goal
		user.StreakGoalStartedAt = &now
		stats = rs.streakStats(user, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
