package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/pkg/entity"
)

type DailyProgressRepository struct {
	conn Querier
}

func NewDailyProgressRepoWithConn(conn PgConnection) *DailyProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dailyProgressRepo: " + err.Error())
	}
	return &DailyProgressRepository{
		conn: conn,
	}
}

func scanDaily(row pgx.Row) (*entity.DailyProgress, error) {
	var dp entity.DailyProgress
	err := row.Scan(
		&dp.UserID,
		&dp.Day,
		&dp.ChaptersRead,
		&dp.XPEarned,
		&dp.TimeReadingSeconds,
		&dp.TimeXPAwardedSeconds,
		&dp.GoalCompleted,
		&dp.SystemGoalCompleted,
	)
	if err != nil {
		return nil, err
	}
	return &dp, nil
}

func (dr *DailyProgressRepository) GetOrCreate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyProgress, error) {
	_, err := dr.conn.Exec(ctx, `INSERT INTO daily_progress (user_id, day) VALUES ($1, $2) ON CONFLICT (user_id, day) DO NOTHING;`, uid, day)
	if err != nil {
		if code, _ := pgErrCode(err); code == codeFKViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, dbError("creating daily progress error", err)
	}
	dp, err := scanDaily(dr.conn.QueryRow(ctx, `SELECT user_id, day, chapters_read, xp_earned, time_reading_seconds, time_xp_awarded_seconds, goal_completed, system_goal_completed FROM daily_progress WHERE user_id = $1 AND day = $2 FOR UPDATE;`, uid, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, dbError("getting daily progress error", err)
	}
	return dp, nil
}

func (dr *DailyProgressRepository) Update(ctx context.Context, dp *entity.DailyProgress) error {
	ct, err := dr.conn.Exec(ctx, `UPDATE daily_progress SET chapters_read = $1, xp_earned = $2, time_reading_seconds = $3, time_xp_awarded_seconds = $4, goal_completed = $5, system_goal_completed = $6 WHERE user_id = $7 AND day = $8;`,
		dp.ChaptersRead,
		dp.XPEarned,
		dp.TimeReadingSeconds,
		dp.TimeXPAwardedSeconds,
		dp.GoalCompleted,
		dp.SystemGoalCompleted,
		dp.UserID,
		dp.Day,
	)
	if err != nil {
		return dbError("updating daily progress error", err)
	}
	if ct.RowsAffected() == 0 {
		return errors.New("updating daily progress error: row doesn't exist")
	}
	return nil
}

func (dr *DailyProgressRepository) ListRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DailyProgress, error) {
	rows, err := dr.conn.Query(ctx, `SELECT user_id, day, chapters_read, xp_earned, time_reading_seconds, time_xp_awarded_seconds, goal_completed, system_goal_completed FROM daily_progress WHERE user_id = $1 AND day >= $2 AND day <= $3 ORDER BY day DESC;`, uid, from, to)
	if err != nil {
		return nil, dbError("listing daily progress error", err)
	}
	defer rows.Close()
	result := make([]entity.DailyProgress, 0, 7)
	for rows.Next() {
		dp, err := scanDaily(rows)
		if err != nil {
			return nil, errors.New("daily progress row parsing error: " + err.Error())
		}
		result = append(result, *dp)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("unexpected daily progress rows error", err)
	}
	return result, nil
}
