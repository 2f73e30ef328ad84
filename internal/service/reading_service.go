package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/internal/gameconfig"
	"github.com/limbo/lectio/internal/gamification"
	"github.com/limbo/lectio/internal/repository"
	"github.com/limbo/lectio/pkg/clock"
	"github.com/limbo/lectio/pkg/entity"
	"github.com/limbo/lectio/pkg/logger"
)

const defaultMaxRetries = 3

type ReadingService struct {
	uow        repository.UnitOfWork
	cfg        gameconfig.Provider
	clk        clock.Clock
	log        *logger.Logger
	newBackOff func() backoff.BackOff
	maxRetries uint64
}

type Option func(*ReadingService)

// WithBackOff replaces the exponential backoff used between retried transactions.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(rs *ReadingService) {
		rs.newBackOff = f
	}
}

func WithMaxRetries(n uint64) Option {
	return func(rs *ReadingService) {
		rs.maxRetries = n
	}
}

func NewReadingService(uow repository.UnitOfWork, cfg gameconfig.Provider, clk clock.Clock, lg *logger.Logger, opts ...Option) *ReadingService {
	if uow == nil {
		log.Fatal("provided nil unit of work")
	}
	if cfg == nil {
		log.Fatal("provided nil game config provider")
	}
	if clk == nil {
		log.Fatal("provided nil clock")
	}
	if lg == nil {
		lg = logger.NewNop()
	}
	InitValidator()
	rs := &ReadingService{
		uow:        uow,
		cfg:        cfg,
		clk:        clk,
		log:        lg,
		maxRetries: defaultMaxRetries,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 50 * time.Millisecond
			b.MaxInterval = time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// inTx runs fn in a transaction, retrying the whole of it while storage reports transient failures.
func (rs *ReadingService) inTx(ctx context.Context, op string, fn func(ctx context.Context, repos *repository.Repositories) error) error {
	b := backoff.WithContext(backoff.WithMaxRetries(rs.newBackOff(), rs.maxRetries), ctx)
	err := backoff.RetryNotify(func() error {
		err := rs.uow.WithinTx(ctx, fn)
		if err != nil && !errors.Is(err, errorvalues.ErrTransientStorage) {
			return backoff.Permanent(err)
		}
		return err
	}, b, func(err error, wait time.Duration) {
		rs.log.Warn("retrying transaction", "op", op, "error", err, "wait", wait)
	})
	if err != nil {
		return wrapErr(op, err)
	}
	return nil
}

// wrapErr keeps domain errors as they are and adds operation context to the rest.
func wrapErr(op string, err error) error {
	for _, known := range []error{
		errorvalues.ErrValidation,
		errorvalues.ErrNotFound,
		errorvalues.ErrAlreadyCompleted,
		errorvalues.ErrUserExists,
		errorvalues.ErrTransientStorage,
	} {
		if errors.Is(err, known) {
			return err
		}
	}
	return errors.New(op + " error: " + err.Error())
}

func (rs *ReadingService) snapshot(ctx context.Context) (gameconfig.Settings, error) {
	s, err := rs.cfg.Snapshot(ctx)
	if err != nil {
		return gameconfig.Settings{}, errors.New("loading game config error: " + err.Error())
	}
	return s, nil
}

// dayOf is the calendar day now falls on. An operation reads the clock once and derives
// its day from that instant.
func (rs *ReadingService) dayOf(now time.Time) time.Time {
	return gamification.CalendarDay(now, rs.clk.Location())
}

func (rs *ReadingService) CompleteChapter(ctx context.Context, uid uuid.UUID, req *CompleteChapterRequest) (*entity.ChapterReward, error) {
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
	var reward *entity.ChapterReward
	err = rs.inTx(ctx, "completing chapter", func(ctx context.Context, repos *repository.Repositories) error {
		chapter, err := repos.Content.GetChapter(ctx, req.ChapterID)
		if err != nil {
			return err
		}
		user, err := repos.Users.LockByID(ctx, uid)
		if err != nil {
			return err
		}
		done, err := repos.ChapterReads.Exists(ctx, uid, chapter.ID)
		if err != nil {
			return err
		}
		if done {
			return errorvalues.ErrAlreadyCompleted
		}
		now := rs.clk.Now()

		r := gamification.ChapterReward(s.RewardRules(), user.CurrentStreak, req.ReadingTimeSeconds)
		award, err := awardXP(ctx, repos, user, r.Total, entity.XPReasonChapterCompleted, s, now)
		if err != nil {
			return err
		}
		streak, err := rs.updateStreak(ctx, repos, user, now)
		if err != nil {
			return err
		}
		daily, err := recordChapterCompletion(ctx, repos, user, s, rs.dayOf(now), r.Total, req.ReadingTimeSeconds)
		if err != nil {
			return err
		}
		err = repos.ChapterReads.Create(ctx, &entity.ChapterRead{
			UserID:           uid,
			ChapterID:        chapter.ID,
			Mode:             req.Mode,
			Version:          req.Version,
			TimeSpentSeconds: req.ReadingTimeSeconds,
			XPEarned:         r.Total,
			CompletedAt:      now,
		})
		if err != nil {
			return err
		}
		book, bp, err := recordChapterInBook(ctx, repos, uid, chapter, now)
		if err != nil {
			return err
		}
		next, err := nextChapter(ctx, repos, chapter, bp)
		if err != nil {
			return err
		}

		reward = &entity.ChapterReward{
			ChapterID: chapter.ID,
			XP: entity.XPBreakdown{
				Base:          r.Base,
				Bonus:         r.Bonus,
				Total:         r.Total,
				BonusLabels:   r.Labels,
				PreviousLevel: award.PreviousLevel,
				NewLevel:      award.NewLevel,
				LeveledUp:     award.LeveledUp,
				Progress:      award.Progress,
			},
			Streak:      streak,
			DailyGoal:   daily,
			Book:        book,
			NextChapter: next,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rs.log.Info("chapter completed",
		"uid", uid,
		"chapter_id", req.ChapterID,
		"xp", reward.XP.Total,
		"leveled_up", reward.XP.LeveledUp,
		"streak", reward.Streak.CurrentStreak,
	)
	return reward, nil
}

func (rs *ReadingService) InitProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgressView, error) {
	if uid == uuid.Nil {
		return nil, validationError("empty user id")
	}
	s, err := rs.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var view *entity.UserProgressView
	err = rs.inTx(ctx, "initializing progress", func(ctx context.Context, repos *repository.Repositories) error {
		user := &entity.User{ID: uid, DailyGoal: 1}
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		view = rs.progressView(user, s, 0, 0)
		return nil
	})
	if err != nil {
		return nil, err
	}
	rs.log.Info("progress initialized", "uid", uid)
	return view, nil
}

func (rs *ReadingService) GetUserProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgressView, error) {
	s, err := rs.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	var view *entity.UserProgressView
	err = rs.inTx(ctx, "getting user progress", func(ctx context.Context, repos *repository.Repositories) error {
		user, err := repos.Users.FindByID(ctx, uid)
		if err != nil {
			return err
		}
		chapters, err := repos.ChapterReads.CountByUser(ctx, uid)
		if err != nil {
			return err
		}
		books, err := repos.Books.CountCompleted(ctx, uid)
		if err != nil {
			return err
		}
		view = rs.progressView(user, s, chapters, books)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// progressView reports the stored level; only the next-level progress follows the current divisor.
func (rs *ReadingService) progressView(user *entity.User, s gameconfig.Settings, chapters, books int) *entity.UserProgressView {
	return &entity.UserProgressView{
		UserID:            user.ID,
		TotalXP:           user.TotalXP,
		CurrentLevel:      user.CurrentLevel,
		Progress:          gamification.ProgressToNext(user.TotalXP, s.LevelDivisor),
		CurrentStreak:     gamification.EffectiveStreak(streakState(user), rs.clk.Now(), rs.clk.Location()),
		LongestStreak:     user.LongestStreak,
		LastReadAt:        user.LastReadAt,
		DailyGoal:         user.DailyGoal,
		ChaptersCompleted: chapters,
		BooksCompleted:    books,
	}
}
