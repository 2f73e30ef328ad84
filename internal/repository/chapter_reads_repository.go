package repository

import (
	"context"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/pkg/entity"
)

const chapterReadsUserFK = "chapter_reads_user_id_fkey"

type ChapterReadsRepository struct {
	conn Querier
}

func NewChapterReadsRepoWithConn(conn PgConnection) *ChapterReadsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for chapterReadsRepo: " + err.Error())
	}
	return &ChapterReadsRepository{
		conn: conn,
	}
}

func (cr *ChapterReadsRepository) Exists(ctx context.Context, uid, chapterID uuid.UUID) (bool, error) {
	var exists bool
	row := cr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM chapter_reads WHERE user_id = $1 AND chapter_id = $2);`,
		uid,
		chapterID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, dbError("inspecting if chapter read exists error", err)
	}
	return exists, nil
}

func (cr *ChapterReadsRepository) Create(ctx context.Context, read *entity.ChapterRead) error {
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO chapter_reads (user_id, chapter_id, mode, version, time_spent_seconds, xp_earned, completed_at) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		read.UserID,
		read.ChapterID,
		string(read.Mode),
		read.Version,
		read.TimeSpentSeconds,
		read.XPEarned,
		read.CompletedAt,
	)
	if err := row.Scan(&read.ID); err != nil {
		code, pgErr := pgErrCode(err)
		switch code {
		// Unique violation: another request completed the chapter first
		case codeUniqueViolation:
			return errorvalues.ErrAlreadyCompleted
		case codeFKViolation:
			if pgErr.ConstraintName == chapterReadsUserFK {
				return errorvalues.ErrUserNotFound
			}
			return errorvalues.ErrChapterNotFound
		}
		return dbError("creating chapter read error", err)
	}
	return nil
}

func (cr *ChapterReadsRepository) CountByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM chapter_reads WHERE user_id = $1;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, dbError("counting chapter reads error", err)
	}
	return count, nil
}
