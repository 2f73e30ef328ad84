package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/lectio/internal/gameconfig"
	"github.com/limbo/lectio/internal/repository"
	"github.com/limbo/lectio/internal/repository/mocks"
	"github.com/limbo/lectio/internal/service"
	"github.com/limbo/lectio/pkg/clock"
	"github.com/limbo/lectio/pkg/entity"
	"github.com/limbo/lectio/pkg/logger"
)

// Variables for tests
var (
	testNow   = time.Date(2026, 6, 10, 9, 0, 0, 0, time.UTC)
	testToday = time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)
	yesterday = testNow.AddDate(0, 0, -1)
)

type fixture struct {
	uow     *mocks.MockUnitOfWork
	users   *mocks.MockUsersRepositoryI
	daily   *mocks.MockDailyProgressRepositoryI
	reads   *mocks.MockChapterReadsRepositoryI
	books   *mocks.MockBookProgressRepositoryI
	content *mocks.MockContentRepositoryI
	xp      *mocks.MockXPEventsRepositoryI
	repos   *repository.Repositories
	clk     *clock.Fixed
	svc     *service.ReadingService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:     mocks.NewMockUnitOfWork(ctrl),
		users:   mocks.NewMockUsersRepositoryI(ctrl),
		daily:   mocks.NewMockDailyProgressRepositoryI(ctrl),
		reads:   mocks.NewMockChapterReadsRepositoryI(ctrl),
		books:   mocks.NewMockBookProgressRepositoryI(ctrl),
		content: mocks.NewMockContentRepositoryI(ctrl),
		xp:      mocks.NewMockXPEventsRepositoryI(ctrl),
		clk:     clock.NewFixed(testNow, time.UTC),
	}
	f.repos = &repository.Repositories{
		Users:        f.users,
		Daily:        f.daily,
		ChapterReads: f.reads,
		Books:        f.books,
		Content:      f.content,
		XPEvents:     f.xp,
	}
	f.svc = service.NewReadingService(
		f.uow,
		gameconfig.Static(gameconfig.Defaults),
		f.clk,
		logger.NewNop(),
		service.WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }),
	)
	return f
}

// useClock rebuilds the service on top of clk.
func (f *fixture) useClock(clk clock.Clock) {
	f.svc = service.NewReadingService(
		f.uow,
		gameconfig.Static(gameconfig.Defaults),
		clk,
		logger.NewNop(),
		service.WithBackOff(func() backoff.BackOff { return &backoff.ZeroBackOff{} }),
	)
}

// tickingClock moves forward by step on every Now call.
type tickingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

func (c *tickingClock) Location() *time.Location {
	return time.UTC
}

// passThrough makes every transaction run fn directly against the mocked repositories.
func (f *fixture) passThrough() {
	f.uow.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(f.run).AnyTimes()
}

func (f *fixture) run(ctx context.Context, fn func(context.Context, *repository.Repositories) error) error {
	return fn(ctx, f.repos)
}

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newUser(streak int, lastReadAt *time.Time) *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		CurrentStreak: streak,
		LongestStreak: streak,
		LastReadAt:    lastReadAt,
		DailyGoal:     1,
	}
}
