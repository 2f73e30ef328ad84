package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/lectio/pkg/entity"
)

type CompleteChapterRequest struct {
	ChapterID          uuid.UUID          `json:"-" validate:"required"`
	ReadingTimeSeconds int                `json:"reading_time_seconds" validate:"gte=0,lte=86400"`
	Version            string             `json:"version" validate:"max=32"`
	Mode               entity.ReadingMode `json:"mode" validate:"required,reading_mode"`
}

type ReadingTimeRequest struct {
	Seconds int64 `json:"seconds" validate:"lte=86400"`
}

type DailyGoalRequest struct {
	Goal int `json:"goal" validate:"min=1,max=1000"`
}

type StreakGoalRequest struct {
	Goal int `json:"goal" validate:"min=1,max=3650"`
}

type AwardXPRequest struct {
	Amount int64           `json:"amount" validate:"gte=0"`
	Reason entity.XPReason `json:"reason" validate:"required,xp_reason"`
}

type ReadingServiceI interface {
	// Creates an empty progress aggregate for a freshly registered user
	InitProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgressView, error)
	GetUserProgress(ctx context.Context, uid uuid.UUID) (*entity.UserProgressView, error)
	// Latest XP ledger entries, newest first
	GetXPHistory(ctx context.Context, uid uuid.UUID, limit int) ([]entity.XPEvent, error)
	AwardXP(ctx context.Context, uid uuid.UUID, req *AwardXPRequest) (*entity.XPAward, error)

	// Applies every effect of reading a chapter in one transaction.
	// Fails with ErrAlreadyCompleted if the user has read it before
	CompleteChapter(ctx context.Context, uid uuid.UUID, req *CompleteChapterRequest) (*entity.ChapterReward, error)
	// Accrues free reading time. Whole minutes are converted to XP exactly once
	RecordReadingTime(ctx context.Context, uid uuid.UUID, req *ReadingTimeRequest) (*entity.ReadingTimeResult, error)

	GetTodayProgress(ctx context.Context, uid uuid.UUID) (*entity.DailyGoalView, error)
	UpdateDailyGoal(ctx context.Context, uid uuid.UUID, req *DailyGoalRequest) (*entity.DailyGoalView, error)
	GetDailyGoalStats(ctx context.Context, uid uuid.UUID, days int) (*entity.DailyGoalStats, error)

	GetStreakStats(ctx context.Context, uid uuid.UUID) (*entity.StreakStats, error)
	SetStreakGoal(ctx context.Context, uid uuid.UUID, req *StreakGoalRequest) (*entity.StreakStats, error)

	GetBookProgress(ctx context.Context, uid, bookID uuid.UUID) (*entity.BookProgressView, error)
	IsChapterUnlocked(ctx context.Context, uid, bookID uuid.UUID, number int) (bool, error)
}
