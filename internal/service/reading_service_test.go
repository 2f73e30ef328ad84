package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/internal/gamification"
	"github.com/limbo/lectio/internal/service"
	"github.com/limbo/lectio/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChapter(number, total int) *entity.Chapter {
	bookID := uuid.New()
	return &entity.Chapter{
		ID:     uuid.New(),
		BookID: bookID,
		Number: number,
		Book:   entity.Book{ID: bookID, Name: "Ruth", TotalChapters: total},
	}
}

func TestCompleteChapterReward(t *testing.T) {
	f := newFixture(t)
	f.passThrough()
	ctx := context.Background()
	user := newUser(3, timePtr(yesterday))
	user.StreakGoal = intPtr(4)
	chapter := testChapter(1, 4)
	next := &entity.Chapter{ID: uuid.New(), BookID: chapter.BookID, Number: 2, Book: chapter.Book}
	dp := &entity.DailyProgress{UserID: user.ID, Day: testToday}

	var (
		read  *entity.ChapterRead
		event *entity.XPEvent
		saved *entity.BookProgress
	)
	f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(chapter, nil)
	f.users.EXPECT().LockByID(gomock.Any(), user.ID).Return(user, nil)
	f.reads.EXPECT().Exists(gomock.Any(), user.ID, chapter.ID).Return(false, nil)
	f.users.EXPECT().UpdateXP(gomock.Any(), user.ID, int64(18), 0).Return(nil)
	f.xp.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev *entity.XPEvent) error {
		event = ev
		return nil
	})
	f.users.EXPECT().UpdateStreak(gomock.Any(), user).Return(nil)
	f.daily.EXPECT().GetOrCreate(gomock.Any(), user.ID, testToday).Return(dp, nil)
	f.daily.EXPECT().Update(gomock.Any(), dp).Return(nil)
	f.reads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.ChapterRead) error {
		read = r
		return nil
	})
	f.books.EXPECT().Find(gomock.Any(), user.ID, chapter.BookID).Return(nil, nil)
	f.books.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, bp *entity.BookProgress) error {
		saved = bp
		return nil
	})
	f.content.EXPECT().GetChapterByNumber(gomock.Any(), chapter.BookID, 2).Return(next, nil)

	reward, err := f.svc.CompleteChapter(ctx, user.ID, &service.CompleteChapterRequest{
		ChapterID:          chapter.ID,
		ReadingTimeSeconds: 120,
		Version:            "NVI",
		Mode:               entity.ReadingModeFree,
	})
	require.NoError(t, err)

	t.Run("xp breakdown", func(t *testing.T) {
		assert.Equal(t, int64(10), reward.XP.Base)
		assert.Equal(t, int64(8), reward.XP.Bonus)
		assert.Equal(t, int64(18), reward.XP.Total)
		assert.Equal(t, []string{gamification.BonusStreak, gamification.BonusSpeed}, reward.XP.BonusLabels)
		assert.False(t, reward.XP.LeveledUp)
		assert.Equal(t, int64(82), reward.XP.Progress.XPRemaining)
		assert.Equal(t, int64(18), event.Amount)
		assert.Equal(t, entity.XPReasonChapterCompleted, event.Reason)
	})
	t.Run("streak", func(t *testing.T) {
		assert.Equal(t, 4, reward.Streak.CurrentStreak)
		assert.True(t, reward.Streak.StreakExtended)
		assert.True(t, reward.Streak.StreakGoalCompleted)
		assert.Nil(t, user.StreakGoal)
		assert.Equal(t, intPtr(4), user.LastStreakGoalCompleted)
		assert.Equal(t, testNow, *user.LastReadAt)
	})
	t.Run("daily goal", func(t *testing.T) {
		assert.Equal(t, 1, reward.DailyGoal.Progress)
		assert.Equal(t, 100, reward.DailyGoal.Percentage)
		assert.True(t, reward.DailyGoal.JustCompleted)
		assert.Equal(t, int64(18), dp.XPEarned)
		assert.Equal(t, int64(120), dp.TimeReadingSeconds)
		assert.Equal(t, int64(120), dp.TimeXPAwardedSeconds)
		assert.True(t, dp.SystemGoalCompleted)
	})
	t.Run("chapter read record", func(t *testing.T) {
		assert.Equal(t, entity.ReadingModeFree, read.Mode)
		assert.Equal(t, "NVI", read.Version)
		assert.Equal(t, 120, read.TimeSpentSeconds)
		assert.Equal(t, int64(18), read.XPEarned)
	})
	t.Run("book and next chapter", func(t *testing.T) {
		assert.Equal(t, 1, saved.ChaptersCompleted)
		assert.Equal(t, 1, saved.LastChapterRead)
		assert.Nil(t, saved.CompletedAt)
		assert.Equal(t, 25, reward.Book.Percentage)
		require.NotNil(t, reward.NextChapter)
		assert.Equal(t, next.ID, reward.NextChapter.ID)
		assert.Equal(t, 2, reward.NextChapter.Number)
		assert.True(t, reward.NextChapter.Unlocked)
	})
}

func TestCompleteLastChapterOfBook(t *testing.T) {
	f := newFixture(t)
	f.passThrough()
	user := newUser(0, nil)
	chapter := testChapter(4, 4)
	bp := &entity.BookProgress{UserID: user.ID, BookID: chapter.BookID, ChaptersCompleted: 3, LastChapterRead: 3}

	f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(chapter, nil)
	f.users.EXPECT().LockByID(gomock.Any(), user.ID).Return(user, nil)
	f.reads.EXPECT().Exists(gomock.Any(), user.ID, chapter.ID).Return(false, nil)
	// no streak, slow reading: base only
	f.users.EXPECT().UpdateXP(gomock.Any(), user.ID, int64(10), 0).Return(nil)
	f.xp.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.users.EXPECT().UpdateStreak(gomock.Any(), user).Return(nil)
	f.daily.EXPECT().GetOrCreate(gomock.Any(), user.ID, testToday).Return(&entity.DailyProgress{UserID: user.ID, Day: testToday}, nil)
	f.daily.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.reads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.books.EXPECT().Find(gomock.Any(), user.ID, chapter.BookID).Return(bp, nil)
	f.books.EXPECT().Upsert(gomock.Any(), bp).Return(nil)

	reward, err := f.svc.CompleteChapter(context.Background(), user.ID, &service.CompleteChapterRequest{
		ChapterID:          chapter.ID,
		ReadingTimeSeconds: 600,
		Mode:               entity.ReadingModePath,
	})
	require.NoError(t, err)
	assert.Empty(t, reward.XP.BonusLabels)
	assert.True(t, reward.Streak.StreakStarted)
	assert.Equal(t, 4, bp.ChaptersCompleted)
	require.NotNil(t, bp.CompletedAt)
	assert.Equal(t, testNow, *bp.CompletedAt)
	assert.True(t, reward.Book.JustCompleted)
	assert.Equal(t, 100, reward.Book.Percentage)
	assert.Nil(t, reward.NextChapter)
}

func TestCompleteChapterFailures(t *testing.T) {
	chapter := testChapter(2, 4)
	req := &service.CompleteChapterRequest{ChapterID: chapter.ID, ReadingTimeSeconds: 200, Mode: entity.ReadingModeFree}
	testCases := []struct {
		Desc         string
		Error        error
		Req          *service.CompleteChapterRequest
		MockPrepFunc func(f *fixture, user *entity.User)
	}{
		{
			Desc:         "invalid mode",
			Error:        errorvalues.ErrValidation,
			Req:          &service.CompleteChapterRequest{ChapterID: chapter.ID, Mode: "FAST"},
			MockPrepFunc: func(f *fixture, user *entity.User) {},
		},
		{
			Desc:         "negative reading time",
			Error:        errorvalues.ErrValidation,
			Req:          &service.CompleteChapterRequest{ChapterID: chapter.ID, ReadingTimeSeconds: -1, Mode: entity.ReadingModePath},
			MockPrepFunc: func(f *fixture, user *entity.User) {},
		},
		{
			Desc:  "chapter not found",
			Error: errorvalues.ErrChapterNotFound,
			Req:   req,
			MockPrepFunc: func(f *fixture, user *entity.User) {
				f.passThrough()
				f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(nil, errorvalues.ErrChapterNotFound)
			},
		},
		{
			Desc:  "user not found",
			Error: errorvalues.ErrUserNotFound,
			Req:   req,
			MockPrepFunc: func(f *fixture, user *entity.User) {
				f.passThrough()
				f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(chapter, nil)
				f.users.EXPECT().LockByID(gomock.Any(), user.ID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:  "already completed",
			Error: errorvalues.ErrAlreadyCompleted,
			Req:   req,
			MockPrepFunc: func(f *fixture, user *entity.User) {
				f.passThrough()
				f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(chapter, nil)
				f.users.EXPECT().LockByID(gomock.Any(), user.ID).Return(user, nil)
				f.reads.EXPECT().Exists(gomock.Any(), user.ID, chapter.ID).Return(true, nil)
			},
		},
		{
			Desc:  "lost insert race",
			Error: errorvalues.ErrAlreadyCompleted,
			Req:   req,
			MockPrepFunc: func(f *fixture, user *entity.User) {
				f.passThrough()
				f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(chapter, nil)
				f.users.EXPECT().LockByID(gomock.Any(), user.ID).Return(user, nil)
				f.reads.EXPECT().Exists(gomock.Any(), user.ID, chapter.ID).Return(false, nil)
				f.users.EXPECT().UpdateXP(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).Return(nil)
				f.xp.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				f.users.EXPECT().UpdateStreak(gomock.Any(), gomock.Any()).Return(nil)
				f.daily.EXPECT().GetOrCreate(gomock.Any(), user.ID, testToday).Return(&entity.DailyProgress{}, nil)
				f.daily.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				f.reads.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrAlreadyCompleted)
			},
		},
		{
			Desc:  "unexpected storage error",
			Error: errors.New("completing chapter error: db error"),
			Req:   req,
			MockPrepFunc: func(f *fixture, user *entity.User) {
				f.passThrough()
				f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(chapter, nil)
				f.users.EXPECT().LockByID(gomock.Any(), user.ID).Return(user, nil)
				f.reads.EXPECT().Exists(gomock.Any(), user.ID, chapter.ID).Return(false, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			f := newFixture(t)
			user := newUser(1, timePtr(testNow))
			tc.MockPrepFunc(f, user)
			reward, err := f.svc.CompleteChapter(context.Background(), user.ID, tc.Req)
			assert.Nil(t, reward)
			if errors.Is(err, tc.Error) {
				return
			}
			assert.EqualError(t, err, tc.Error.Error())
		})
	}
}

func TestTransientErrorsAreRetried(t *testing.T) {
	transient := errors.Join(errorvalues.ErrTransientStorage, errors.New("deadlock detected"))
	user := newUser(2, timePtr(testNow))

	t.Run("succeeds after retries", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.uow.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(transient),
			f.uow.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(transient),
			f.uow.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(f.run),
		)
		f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		stats, err := f.svc.GetStreakStats(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.CurrentStreak)
	})
	t.Run("gives up after three retries", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(transient).Times(4)
		_, err := f.svc.GetStreakStats(context.Background(), user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStorage)
	})
	t.Run("permanent errors are not retried", func(t *testing.T) {
		f := newFixture(t)
		f.uow.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserNotFound).Times(1)
		_, err := f.svc.GetStreakStats(context.Background(), user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestInitAndGetUserProgress(t *testing.T) {
	f := newFixture(t)
	f.passThrough()
	ctx := context.Background()
	uid := uuid.New()

	t.Run("init", func(t *testing.T) {
		f.users.EXPECT().Create(gomock.Any(), &entity.User{ID: uid, DailyGoal: 1}).Return(nil)
		view, err := f.svc.InitProgress(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 0, view.CurrentLevel)
		assert.Equal(t, int64(100), view.Progress.XPRemaining)
	})
	t.Run("init twice", func(t *testing.T) {
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
		_, err := f.svc.InitProgress(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("progress keeps stored level", func(t *testing.T) {
		user := &entity.User{ID: uid, TotalXP: 450, CurrentLevel: 1, CurrentStreak: 4, LongestStreak: 9, LastReadAt: timePtr(yesterday.AddDate(0, 0, -1)), DailyGoal: 2}
		f.users.EXPECT().FindByID(gomock.Any(), uid).Return(user, nil)
		f.reads.EXPECT().CountByUser(gomock.Any(), uid).Return(31, nil)
		f.books.EXPECT().CountCompleted(gomock.Any(), uid).Return(2, nil)
		view, err := f.svc.GetUserProgress(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 1, view.CurrentLevel)
		assert.Equal(t, 2, view.Progress.CurrentLevel)
		// last read two days ago: the streak is lost
		assert.Equal(t, 0, view.CurrentStreak)
		assert.Equal(t, 9, view.LongestStreak)
		assert.Equal(t, 31, view.ChaptersCompleted)
		assert.Equal(t, 2, view.BooksCompleted)
	})
}

func TestCompleteChapterAtMidnightStaysOnOneDay(t *testing.T) {
	f := newFixture(t)
	f.passThrough()
	f.useClock(&tickingClock{now: time.Date(2026, 6, 10, 23, 59, 59, 999_000_000, time.UTC), step: time.Millisecond})
	user := newUser(0, nil)
	chapter := testChapter(1, 4)

	var read *entity.ChapterRead
	f.content.EXPECT().GetChapter(gomock.Any(), chapter.ID).Return(chapter, nil)
	f.users.EXPECT().LockByID(gomock.Any(), user.ID).Return(user, nil)
	f.reads.EXPECT().Exists(gomock.Any(), user.ID, chapter.ID).Return(false, nil)
	f.users.EXPECT().UpdateXP(gomock.Any(), user.ID, int64(10), 0).Return(nil)
	f.xp.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.users.EXPECT().UpdateStreak(gomock.Any(), user).Return(nil)
	f.daily.EXPECT().GetOrCreate(gomock.Any(), user.ID, testToday).Return(&entity.DailyProgress{UserID: user.ID, Day: testToday}, nil)
	f.daily.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.reads.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.ChapterRead) error {
		read = r
		return nil
	})
	f.books.EXPECT().Find(gomock.Any(), user.ID, chapter.BookID).Return(nil, nil)
	f.books.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.content.EXPECT().GetChapterByNumber(gomock.Any(), chapter.BookID, 2).Return(nil, errorvalues.ErrChapterNotFound)

	_, err := f.svc.CompleteChapter(context.Background(), user.ID, &service.CompleteChapterRequest{
		ChapterID:          chapter.ID,
		ReadingTimeSeconds: 600,
		Mode:               entity.ReadingModePath,
	})
	require.NoError(t, err)
	require.NotNil(t, user.LastReadAt)
	assert.Equal(t, testToday, gamification.CalendarDay(*user.LastReadAt, time.UTC))
	assert.Equal(t, *user.LastReadAt, read.CompletedAt)
}
