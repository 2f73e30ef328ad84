package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/pkg/entity"
)

type BookProgressRepository struct {
	conn Querier
}

func NewBookProgressRepoWithConn(conn PgConnection) *BookProgressRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for bookProgressRepo: " + err.Error())
	}
	return &BookProgressRepository{
		conn: conn,
	}
}

func (br *BookProgressRepository) Find(ctx context.Context, uid, bookID uuid.UUID) (*entity.BookProgress, error) {
	var bp entity.BookProgress
	row := br.conn.QueryRow(ctx, `SELECT user_id, book_id, chapters_completed, last_chapter_read, completed_at FROM book_progress WHERE user_id = $1 AND book_id = $2;`, uid, bookID)
	if err := row.Scan(&bp.UserID, &bp.BookID, &bp.ChaptersCompleted, &bp.LastChapterRead, &bp.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("getting book progress error", err)
	}
	return &bp, nil
}

func (br *BookProgressRepository) Upsert(ctx context.Context, bp *entity.BookProgress) error {
	_, err := br.conn.Exec(ctx, `INSERT INTO book_progress (user_id, book_id, chapters_completed, last_chapter_read, completed_at) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, book_id) DO UPDATE SET
		chapters_completed = GREATEST(book_progress.chapters_completed, EXCLUDED.chapters_completed),
		last_chapter_read = GREATEST(book_progress.last_chapter_read, EXCLUDED.last_chapter_read),
		completed_at = COALESCE(book_progress.completed_at, EXCLUDED.completed_at);`,
		bp.UserID,
		bp.BookID,
		bp.ChaptersCompleted,
		bp.LastChapterRead,
		bp.CompletedAt,
	)
	if err != nil {
		if code, pgErr := pgErrCode(err); code == codeFKViolation {
			if pgErr.ConstraintName == "book_progress_user_id_fkey" {
				return errorvalues.ErrUserNotFound
			}
			return errorvalues.ErrBookNotFound
		}
		return dbError("saving book progress error", err)
	}
	return nil
}

func (br *BookProgressRepository) CountCompleted(ctx context.Context, uid uuid.UUID) (int, error) {
	row := br.conn.QueryRow(ctx, `SELECT COUNT(*) FROM book_progress WHERE user_id = $1 AND completed_at IS NOT NULL;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, dbError("counting completed books error", err)
	}
	return count, nil
}
