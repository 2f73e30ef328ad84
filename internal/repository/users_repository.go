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

type UsersRepository struct {
	conn Querier
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (id, daily_goal) VALUES ($1, $2) RETURNING created_at;`, user.ID, user.DailyGoal)
	if err := row.Scan(&user.CreatedAt); err != nil {
		code, _ := pgErrCode(err)
		switch code {
		case codeUniqueViolation:
			return errorvalues.ErrUserExists
		case codeCheckViolation:
			return errors.Join(errorvalues.ErrValidation, errors.New("daily goal must be positive"))
		}
		return dbError("creating user db error", err)
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.TotalXP,
		&user.CurrentLevel,
		&user.CurrentStreak,
		&user.LongestStreak,
		&user.LastReadAt,
		&user.DailyGoal,
		&user.StreakGoal,
		&user.StreakGoalStartedAt,
		&user.LastStreakGoalCompleted,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT id, total_xp, current_level, current_streak, longest_streak, last_read_at, daily_goal, streak_goal, streak_goal_started_at, last_streak_goal_completed, created_at FROM users WHERE id = $1;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, dbError("searching user by id error", err)
	}
	return user, nil
}

func (ur *UsersRepository) LockByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := scanUser(ur.conn.QueryRow(ctx, `SELECT id, total_xp, current_level, current_streak, longest_streak, last_read_at, daily_goal, streak_goal, streak_goal_started_at, last_streak_goal_completed, created_at FROM users WHERE id = $1 FOR UPDATE;`, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, dbError("locking user error", err)
	}
	return user, nil
}

func (ur *UsersRepository) UpdateXP(ctx context.Context, uid uuid.UUID, totalXP int64, level int) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET total_xp = $1, current_level = $2 WHERE id = $3;`, totalXP, level, uid)
	if err != nil {
		return dbError("updating user xp error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateStreak(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET current_streak = $1, longest_streak = $2, last_read_at = $3, streak_goal = $4, streak_goal_started_at = $5, last_streak_goal_completed = $6 WHERE id = $7;`,
		user.CurrentStreak,
		user.LongestStreak,
		user.LastReadAt,
		user.StreakGoal,
		user.StreakGoalStartedAt,
		user.LastStreakGoalCompleted,
		user.ID,
	)
	if err != nil {
		return dbError("updating user streak error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateDailyGoal(ctx context.Context, uid uuid.UUID, goal int) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET daily_goal = $1 WHERE id = $2;`, goal, uid)
	if err != nil {
		if code, _ := pgErrCode(err); code == codeCheckViolation {
			return errors.Join(errorvalues.ErrValidation, errors.New("daily goal must be positive"))
		}
		return dbError("updating daily goal error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateStreakGoal(ctx context.Context, uid uuid.UUID, goal int, startedAt time.Time) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET streak_goal = $1, streak_goal_started_at = $2 WHERE id = $3;`, goal, startedAt, uid)
	if err != nil {
		return dbError("updating streak goal error", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
