package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/lectio/internal/gameconfig"
	"github.com/limbo/lectio/internal/gamification"
	"github.com/limbo/lectio/internal/repository"
	"github.com/limbo/lectio/pkg/entity"
)

const (
	defaultXPHistoryLimit = 20
	maxXPHistoryLimit     = 100
)

// awardXP is the only place total_xp and current_level are written. user must be locked
// by the surrounding transaction; it is updated in place.
func awardXP(ctx context.Context, repos *repository.Repositories, user *entity.User, amount int64, reason entity.XPReason, s gameconfig.Settings, now time.Time) (*entity.XPAward, error) {
	if amount < 0 {
		return nil, validationError("xp amount must not be negative")
	}
	previous := user.CurrentLevel
	total := user.TotalXP + amount
	level := gamification.Level(total, s.LevelDivisor)
	if err := repos.Users.UpdateXP(ctx, user.ID, total, level); err != nil {
		return nil, err
	}
	err := repos.XPEvents.Create(ctx, &entity.XPEvent{
		UserID:    user.ID,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	user.TotalXP = total
	user.CurrentLevel = level
	return &entity.XPAward{
		Amount:        amount,
		TotalXP:       total,
		PreviousLevel: previous,
		NewLevel:      level,
		LeveledUp:     level > previous,
		Progress:      gamification.ProgressToNext(total, s.LevelDivisor),
	}, nil
}

func (rs *ReadingService) AwardXP(ctx context.Context, uid uuid.UUID, req *AwardXPRequest) (*entity.XPAward, error) {
	if req == nil {
		return nil, validationError("empty request")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	s, err := rs.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var award *entity.XPAward
	err = rs.inTx(ctx, "awarding xp", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.LockByID(ctx, uid)
		if err != nil {
			return err
		}
		award, err = awardXP(ctx, repos, user, req.Amount, req.Reason, s, rs.clk.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	if award.LeveledUp {
		rs.log.Info("user leveled up", "uid", uid, "level", award.NewLevel)
	}
	return award, nil
}

func (rs *ReadingService) GetXPHistory(ctx context.Context, uid uuid.UUID, limit int) ([]entity.XPEvent, error) {
	switch {
	case limit == 0:
		limit = defaultXPHistoryLimit
	case limit < 0 || limit > maxXPHistoryLimit:
		return nil, validationError("limit must be between 1 and 100")
	}
	var events []entity.XPEvent
	err := rs.inTx(ctx, "listing xp history", func(ctx context.Context, repos *repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, uid); err != nil {
			return err
		}
		var err error
		events, err = repos.XPEvents.ListByUser(ctx, uid, limit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
