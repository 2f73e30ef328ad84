package service_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/internal/gameconfig"
	"github.com/limbo/lectio/internal/repository"
	"github.com/limbo/lectio/internal/service"
	"github.com/limbo/lectio/pkg/clock"
	"github.com/limbo/lectio/pkg/entity"
	"github.com/limbo/lectio/pkg/logger"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestReadingServiceIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	dbCfg, bookID, chapterIDs := setupReadingTestDB(t)
	pool := repository.NewPool(dbCfg)
	t.Cleanup(pool.Close)
	uow := repository.NewUnitOfWorkWithConn(pool)
	provider := gameconfig.NewCachedProvider(repository.NewAppConfigRepoWithConn(pool), time.Minute, clock.NewFixed(testNow, time.UTC), logger.NewNop())
	clk := clock.NewFixed(testNow, time.UTC)
	rs := service.NewReadingService(uow, provider, clk, logger.NewNop())
	ctx := context.Background()
	uid := uuid.New()

	t.Run("init progress", func(t *testing.T) {
		view, err := rs.InitProgress(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, 1, view.DailyGoal)
		_, err = rs.InitProgress(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("concurrent completion of one chapter", func(t *testing.T) {
		req := &service.CompleteChapterRequest{ChapterID: chapterIDs[0], ReadingTimeSeconds: 120, Mode: entity.ReadingModePath}
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = rs.CompleteChapter(ctx, uid, req)
			}(i)
		}
		wg.Wait()
		succeeded, rejected := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, errorvalues.ErrAlreadyCompleted):
				rejected++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, rejected)

		progress, err := rs.GetUserProgress(ctx, uid)
		require.NoError(t, err)
		// base 10 + speed 3, no streak yet
		assert.Equal(t, int64(13), progress.TotalXP)
		assert.Equal(t, 1, progress.ChaptersCompleted)
		assert.Equal(t, 1, progress.CurrentStreak)
	})
	t.Run("next day extends streak", func(t *testing.T) {
		clk.Advance(24 * time.Hour)
		reward, err := rs.CompleteChapter(ctx, uid, &service.CompleteChapterRequest{ChapterID: chapterIDs[1], ReadingTimeSeconds: 400, Mode: entity.ReadingModePath})
		require.NoError(t, err)
		assert.Equal(t, int64(15), reward.XP.Total)
		assert.Equal(t, 2, reward.Streak.CurrentStreak)
		assert.True(t, reward.Streak.StreakExtended)
		assert.Nil(t, reward.NextChapter)
		assert.True(t, reward.Book.JustCompleted)
	})
	t.Run("reading time", func(t *testing.T) {
		res, err := rs.RecordReadingTime(ctx, uid, &service.ReadingTimeRequest{Seconds: 125})
		require.NoError(t, err)
		// 400 seconds from the chapter already count as 6 paid minutes
		assert.Equal(t, int64(2), res.MinutesAwarded)
		assert.Equal(t, int64(485), res.SecondsReadToday)
	})
	t.Run("book progress", func(t *testing.T) {
		view, err := rs.GetBookProgress(ctx, uid, bookID)
		require.NoError(t, err)
		assert.Equal(t, 2, view.ChaptersCompleted)
		assert.Equal(t, 100, view.Percentage)
		assert.NotNil(t, view.CompletedAt)
	})
	t.Run("history", func(t *testing.T) {
		events, err := rs.GetXPHistory(ctx, uid, 10)
		require.NoError(t, err)
		assert.Len(t, events, 3)
	})
}

func setupReadingTestDB(t *testing.T) (*testPGConfig, uuid.UUID, []uuid.UUID) {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("lectio"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	bookID := uuid.New()
	chapterIDs := []uuid.UUID{uuid.New(), uuid.New()}
	if _, err := conn.Exec(`INSERT INTO books (id, name, total_chapters) VALUES ($1, 'Obadiah', 2);`, bookID); err != nil {
		t.Fatal(err)
	}
	for i, id := range chapterIDs {
		if _, err := conn.Exec(`INSERT INTO chapters (id, book_id, number) VALUES ($1, $2, $3);`, id, bookID, i+1); err != nil {
			t.Fatal(err)
		}
	}
	return &testPGConfig{connStr: connStr}, bookID, chapterIDs
}
