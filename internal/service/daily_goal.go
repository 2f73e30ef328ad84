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
	defaultStatsDays = 7
	maxStatsDays     = 90
)

func settleGoals(dp *entity.DailyProgress, dailyGoal int, s gameconfig.Settings) {
	if dp.ChaptersRead >= dailyGoal {
		dp.GoalCompleted = true
	}
	if dp.ChaptersRead >= s.SystemDailyGoalChapters {
		dp.SystemGoalCompleted = true
	}
}

func dailyView(dp *entity.DailyProgress, dailyGoal int) entity.DailyGoalView {
	return gamification.GoalView(dailyGoal, dp.ChaptersRead, dp.XPEarned, dp.TimeReadingSeconds)
}

// recordChapterCompletion counts a completed chapter in today's row. Whole minutes of the
// chapter's reading time advance both the reading time and the XP watermark.
func recordChapterCompletion(ctx context.Context, repos *repository.Repositories, user *entity.User, s gameconfig.Settings, day time.Time, xpEarned int64, readingTimeSeconds int) (entity.DailyGoalView, error) {
	dp, err := repos.Daily.GetOrCreate(ctx, user.ID, day)
	if err != nil {
		return entity.DailyGoalView{}, err
	}
	wasCompleted := dp.GoalCompleted
	implied := int64(readingTimeSeconds/60) * 60
	dp.ChaptersRead++
	dp.XPEarned += xpEarned
	dp.TimeReadingSeconds += implied
	dp.TimeXPAwardedSeconds += implied
	settleGoals(dp, user.DailyGoal, s)
	if err := repos.Daily.Update(ctx, dp); err != nil {
		return entity.DailyGoalView{}, err
	}
	view := dailyView(dp, user.DailyGoal)
	view.JustCompleted = !wasCompleted && dp.GoalCompleted
	return view, nil
}

func (rs *ReadingService) RecordReadingTime(ctx context.Context, uid uuid.UUID, req *ReadingTimeRequest) (*entity.ReadingTimeResult, error) {
	if req == nil {
		return nil, validationError("empty request")
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.Seconds < 1 {
		return &entity.ReadingTimeResult{}, nil
	}
	s, err := rs.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var res *entity.ReadingTimeResult
	err = rs.inTx(ctx, "recording reading time", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.LockByID(ctx, uid)
		if err != nil {
			return err
		}
		now := rs.clk.Now()
		dp, err := repos.Daily.GetOrCreate(ctx, uid, rs.dayOf(now))
		if err != nil {
			return err
		}
		dp.TimeReadingSeconds += req.Seconds
		res = &entity.ReadingTimeResult{SecondsRecorded: req.Seconds}

		if minutes := gamification.NewlyEligibleMinutes(dp.TimeReadingSeconds, dp.TimeXPAwardedSeconds); minutes > 0 {
			amount := minutes * s.XPPerMinuteReading
			award, err := awardXP(ctx, repos, user, amount, entity.XPReasonReadingTime, s, now)
			if err != nil {
				return err
			}
			streak, err := rs.updateStreak(ctx, repos, user, now)
			if err != nil {
				return err
			}
			dp.XPEarned += amount
			dp.TimeXPAwardedSeconds = dp.TimeReadingSeconds / 60 * 60
			res.MinutesAwarded = minutes
			res.XPAwarded = amount
			res.XP = award
			res.Streak = &streak
		}
		if err := repos.Daily.Update(ctx, dp); err != nil {
			return err
		}
		res.SecondsReadToday = dp.TimeReadingSeconds
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (rs *ReadingService) GetTodayProgress(ctx context.Context, uid uuid.UUID) (*entity.DailyGoalView, error) {
	var view entity.DailyGoalView
	err := rs.inTx(ctx, "getting today progress", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.FindByID(ctx, uid)
		if err != nil {
			return err
		}
		dp, err := repos.Daily.GetOrCreate(ctx, uid, rs.dayOf(rs.clk.Now()))
		if err != nil {
			return err
		}
		view = dailyView(dp, user.DailyGoal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (rs *ReadingService) UpdateDailyGoal(ctx context.Context, uid uuid.UUID, req *DailyGoalRequest) (*entity.DailyGoalView, error) {
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
	var view entity.DailyGoalView
	err = rs.inTx(ctx, "updating daily goal", func(ctx context.Context, repos *repository.Repositories) error {
		if _, err := repos.Users.LockByID(ctx, uid); err != nil {
			return err
		}
		if err := repos.Users.UpdateDailyGoal(ctx, uid, req.Goal); err != nil {
			return err
		}
		dp, err := repos.Daily.GetOrCreate(ctx, uid, rs.dayOf(rs.clk.Now()))
		if err != nil {
			return err
		}
		wasCompleted, wasSystem := dp.GoalCompleted, dp.SystemGoalCompleted
		settleGoals(dp, req.Goal, s)
		if dp.GoalCompleted != wasCompleted || dp.SystemGoalCompleted != wasSystem {
			if err := repos.Daily.Update(ctx, dp); err != nil {
				return err
			}
		}
		view = dailyView(dp, req.Goal)
		view.JustCompleted = !wasCompleted && dp.GoalCompleted
		return nil
	})
	if err != nil {
		return nil, err
	}
	rs.log.Info("daily goal updated", "uid", uid, "goal", req.Goal)
	return &view, nil
}

// GetDailyGoalStats returns today's view and one history entry per day of the window,
// newest first. Days without activity are reported as empty entries.
func (rs *ReadingService) GetDailyGoalStats(ctx context.Context, uid uuid.UUID, days int) (*entity.DailyGoalStats, error) {
	switch {
	case days == 0:
		days = defaultStatsDays
	case days < 0 || days > maxStatsDays:
		return nil, validationError("days must be between 1 and 90")
	}
	var stats *entity.DailyGoalStats
	err := rs.inTx(ctx, "getting daily goal stats", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.FindByID(ctx, uid)
		if err != nil {
			return err
		}
		today := rs.dayOf(rs.clk.Now())
		dp, err := repos.Daily.GetOrCreate(ctx, uid, today)
		if err != nil {
			return err
		}
		from := today.AddDate(0, 0, -(days - 1))
		rows, err := repos.Daily.ListRange(ctx, uid, from, today)
		if err != nil {
			return err
		}
		byDay := make(map[string]entity.DailyProgress, len(rows))
		for _, row := range rows {
			byDay[row.Day.Format(time.DateOnly)] = row
		}
		stats = &entity.DailyGoalStats{
			Today:   dailyView(dp, user.DailyGoal),
			Days:    days,
			History: make([]entity.DailyHistoryEntry, 0, days),
		}
		for i := 0; i < days; i++ {
			key := today.AddDate(0, 0, -i).Format(time.DateOnly)
			row := byDay[key]
			if row.GoalCompleted {
				stats.DaysGoalMet++
			}
			stats.TotalChapters += row.ChaptersRead
			stats.History = append(stats.History, entity.DailyHistoryEntry{
				Day:           key,
				ChaptersRead:  row.ChaptersRead,
				XPEarned:      row.XPEarned,
				SecondsRead:   row.TimeReadingSeconds,
				GoalCompleted: row.GoalCompleted,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
