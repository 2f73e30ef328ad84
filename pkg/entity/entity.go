package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReadingMode string

const (
	ReadingModePath ReadingMode = "PATH"
	ReadingModeFree ReadingMode = "FREE"
)

type XPReason string

const (
	XPReasonChapterCompleted XPReason = "chapter_completed"
	XPReasonReadingTime      XPReason = "reading_time"
	XPReasonManual           XPReason = "manual"
)

// User is the per-user progress aggregate.
type User struct {
	ID                      uuid.UUID
	TotalXP                 int64
	CurrentLevel            int
	CurrentStreak           int
	LongestStreak           int
	LastReadAt              *time.Time
	DailyGoal               int
	StreakGoal              *int
	StreakGoalStartedAt     *time.Time
	LastStreakGoalCompleted *int
	CreatedAt               time.Time
}

type DailyProgress struct {
	UserID               uuid.UUID
	Day                  time.Time
	ChaptersRead         int
	XPEarned             int64
	TimeReadingSeconds   int64
	TimeXPAwardedSeconds int64
	GoalCompleted        bool
	SystemGoalCompleted  bool
}

type ChapterRead struct {
	ID               int64
	UserID           uuid.UUID
	ChapterID        uuid.UUID
	Mode             ReadingMode
	Version          string
	TimeSpentSeconds int
	XPEarned         int64
	CompletedAt      time.Time
}

type BookProgress struct {
	UserID            uuid.UUID
	BookID            uuid.UUID
	ChaptersCompleted int
	LastChapterRead   int
	CompletedAt       *time.Time
}

type Book struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	TotalChapters int       `json:"total_chapters"`
}

type Chapter struct {
	ID     uuid.UUID `json:"id"`
	BookID uuid.UUID `json:"book_id"`
	Number int       `json:"number"`
	Book   Book      `json:"book"`
}

type XPEvent struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Amount    int64     `json:"amount"`
	Reason    XPReason  `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type LevelProgress struct {
	CurrentLevel     int   `json:"current_level"`
	XPIntoLevel      int64 `json:"xp_into_level"`
	XPNeededForLevel int64 `json:"xp_needed_for_level"`
	XPRemaining      int64 `json:"xp_remaining"`
}

type XPAward struct {
	Amount        int64         `json:"amount"`
	TotalXP       int64         `json:"total_xp"`
	PreviousLevel int           `json:"previous_level"`
	NewLevel      int           `json:"new_level"`
	LeveledUp     bool          `json:"leveled_up"`
	Progress      LevelProgress `json:"progress"`
}

type StreakResult struct {
	CurrentStreak       int  `json:"current_streak"`
	LongestStreak       int  `json:"longest_streak"`
	StreakExtended      bool `json:"streak_extended"`
	StreakStarted       bool `json:"streak_started"`
	StreakGoalCompleted bool `json:"streak_goal_completed"`
}

type StreakStatus struct {
	HasStreak     bool `json:"has_streak"`
	AtRisk        bool `json:"at_risk"`
	Lost          bool `json:"lost"`
	DaysRemaining int  `json:"days_remaining"`
}

type StreakStats struct {
	CurrentStreak           int          `json:"current_streak"`
	LongestStreak           int          `json:"longest_streak"`
	LastReadAt              *time.Time   `json:"last_read_at,omitempty"`
	Status                  StreakStatus `json:"status"`
	StreakGoal              *int         `json:"streak_goal,omitempty"`
	StreakGoalStartedAt     *time.Time   `json:"streak_goal_started_at,omitempty"`
	LastStreakGoalCompleted *int         `json:"last_streak_goal_completed,omitempty"`
}

type DailyGoalView struct {
	Goal              int   `json:"goal"`
	Progress          int   `json:"progress"`
	Percentage        int   `json:"percentage"`
	ChaptersRemaining int   `json:"chapters_remaining"`
	XPEarnedToday     int64 `json:"xp_earned_today"`
	SecondsReadToday  int64 `json:"seconds_read_today"`
	GoalCompleted     bool  `json:"goal_completed"`
	JustCompleted     bool  `json:"just_completed,omitempty"`
}

type DailyHistoryEntry struct {
	Day           string `json:"day"`
	ChaptersRead  int    `json:"chapters_read"`
	XPEarned      int64  `json:"xp_earned"`
	SecondsRead   int64  `json:"seconds_read"`
	GoalCompleted bool   `json:"goal_completed"`
}

type DailyGoalStats struct {
	Today         DailyGoalView       `json:"today"`
	Days          int                 `json:"days"`
	DaysGoalMet   int                 `json:"days_goal_met"`
	TotalChapters int                 `json:"total_chapters"`
	History       []DailyHistoryEntry `json:"history"`
}

type ReadingTimeResult struct {
	SecondsRecorded  int64         `json:"seconds_recorded"`
	SecondsReadToday int64         `json:"seconds_read_today"`
	MinutesAwarded   int64         `json:"minutes_awarded"`
	XPAwarded        int64         `json:"xp_awarded"`
	XP               *XPAward      `json:"xp,omitempty"`
	Streak           *StreakResult `json:"streak,omitempty"`
}

type BookProgressView struct {
	BookID            uuid.UUID  `json:"book_id"`
	BookName          string     `json:"book_name"`
	TotalChapters     int        `json:"total_chapters"`
	ChaptersCompleted int        `json:"chapters_completed"`
	LastChapterRead   int        `json:"last_chapter_read"`
	Percentage        int        `json:"percentage"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	NextUnlocked      int        `json:"next_unlocked,omitempty"`
	JustCompleted     bool       `json:"just_completed,omitempty"`
}

type NextChapter struct {
	ID       uuid.UUID `json:"id"`
	Number   int       `json:"number"`
	Unlocked bool      `json:"unlocked"`
}

type XPBreakdown struct {
	Base          int64         `json:"base"`
	Bonus         int64         `json:"bonus"`
	Total         int64         `json:"total"`
	BonusLabels   []string      `json:"bonus_labels"`
	PreviousLevel int           `json:"previous_level"`
	NewLevel      int           `json:"new_level"`
	LeveledUp     bool          `json:"leveled_up"`
	Progress      LevelProgress `json:"progress"`
}

// ChapterReward is the summary returned after a chapter completion.
type ChapterReward struct {
	ChapterID   uuid.UUID        `json:"chapter_id"`
	XP          XPBreakdown      `json:"xp"`
	Streak      StreakResult     `json:"streak"`
	DailyGoal   DailyGoalView    `json:"daily_goal"`
	Book        BookProgressView `json:"book"`
	NextChapter *NextChapter     `json:"next_chapter"`
}

type UserProgressView struct {
	UserID            uuid.UUID     `json:"uid"`
	TotalXP           int64         `json:"total_xp"`
	CurrentLevel      int           `json:"current_level"`
	Progress          LevelProgress `json:"progress"`
	CurrentStreak     int           `json:"current_streak"`
	LongestStreak     int           `json:"longest_streak"`
	LastReadAt        *time.Time    `json:"last_read_at,omitempty"`
	DailyGoal         int           `json:"daily_goal"`
	ChaptersCompleted int           `json:"chapters_completed"`
	BooksCompleted    int           `json:"books_completed"`
}
