package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/lectio/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates progress aggregate with zero XP, level and streak
	Create(ctx context.Context, user *entity.User) error
	// Looks up progress aggregate by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Same as FindByID, but the row stays locked until the surrounding transaction ends.
	// Every read-then-write of a user's aggregates starts with it
	LockByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Stores total XP and cached level. Nothing but XP awarding should call it
	UpdateXP(ctx context.Context, uid uuid.UUID, totalXP int64, level int) error
	// Stores streak counters, last read timestamp and streak goal fields
	UpdateStreak(ctx context.Context, user *entity.User) error
	UpdateDailyGoal(ctx context.Context, uid uuid.UUID, goal int) error
	UpdateStreakGoal(ctx context.Context, uid uuid.UUID, goal int, startedAt time.Time) error
}

type DailyProgressRepositoryI interface {
	// Returns the (user, day) row, inserting an empty one first if needed
	GetOrCreate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyProgress, error)
	Update(ctx context.Context, dp *entity.DailyProgress) error
	// Rows between from and to inclusive, newest first
	ListRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyProgress, error)
}

type ChapterReadsRepositoryI interface {
	Exists(ctx context.Context, uid, chapterID uuid.UUID) (bool, error)
	// Inserts read record and fills its ID. Unique (user, chapter) violation gives ErrAlreadyCompleted
	Create(ctx context.Context, read *entity.ChapterRead) error
	CountByUser(ctx context.Context, uid uuid.UUID) (int, error)
}

type BookProgressRepositoryI interface {
	// Returns nil without error if user has not started the book
	Find(ctx context.Context, uid, bookID uuid.UUID) (*entity.BookProgress, error)
	// Inserts or updates progress. Counters never go down and completion time is never cleared
	Upsert(ctx context.Context, bp *entity.BookProgress) error
	CountCompleted(ctx context.Context, uid uuid.UUID) (int, error)
}

type ContentRepositoryI interface {
	GetChapter(ctx context.Context, id uuid.UUID) (*entity.Chapter, error)
	GetChapterByNumber(ctx context.Context, bookID uuid.UUID, number int) (*entity.Chapter, error)
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)
}

type XPEventsRepositoryI interface {
	Create(ctx context.Context, ev *entity.XPEvent) error
	ListByUser(ctx context.Context, uid uuid.UUID, limit int) ([]entity.XPEvent, error)
}

type AppConfigRepositoryI interface {
	GetAll(ctx context.Context) (map[string]string, error)
}

// Repositories bound to one transaction.
type Repositories struct {
	Users        UsersRepositoryI
	Daily        DailyProgressRepositoryI
	ChapterReads ChapterReadsRepositoryI
	Books        BookProgressRepositoryI
	Content      ContentRepositoryI
	XPEvents     XPEventsRepositoryI
}

type UnitOfWork interface {
	// Runs fn in a single transaction. Commits if fn returns nil, rolls back otherwise
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is satisfied by pools, connections and transactions
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
