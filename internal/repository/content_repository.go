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

// ContentRepository reads books and chapters. The engine never writes content.
type ContentRepository struct {
	conn Querier
}

func NewContentRepoWithConn(conn PgConnection) *ContentRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for contentRepo: " + err.Error())
	}
	return &ContentRepository{
		conn: conn,
	}
}

func scanChapter(row pgx.Row) (*entity.Chapter, error) {
	var c entity.Chapter
	if err := row.Scan(&c.ID, &c.BookID, &c.Number, &c.Book.Name, &c.Book.TotalChapters); err != nil {
		return nil, err
	}
	c.Book.ID = c.BookID
	return &c, nil
}

func (cr *ContentRepository) GetChapter(ctx context.Context, id uuid.UUID) (*entity.Chapter, error) {
	c, err := scanChapter(cr.conn.QueryRow(ctx, `SELECT c.id, c.book_id, c.number, b.name, b.total_chapters FROM chapters c JOIN books b ON b.id = c.book_id WHERE c.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChapterNotFound
		}
		return nil, dbError("getting chapter error", err)
	}
	return c, nil
}

func (cr *ContentRepository) GetChapterByNumber(ctx context.Context, bookID uuid.UUID, number int) (*entity.Chapter, error) {
	c, err := scanChapter(cr.conn.QueryRow(ctx, `SELECT c.id, c.book_id, c.number, b.name, b.total_chapters FROM chapters c JOIN books b ON b.id = c.book_id WHERE c.book_id = $1 AND c.number = $2;`, bookID, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChapterNotFound
		}
		return nil, dbError("getting chapter by number error", err)
	}
	return c, nil
}

func (cr *ContentRepository) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var b entity.Book
	row := cr.conn.QueryRow(ctx, `SELECT id, name, total_chapters FROM books WHERE id = $1;`, id)
	if err := row.Scan(&b.ID, &b.Name, &b.TotalChapters); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBookNotFound
		}
		return nil, dbError("getting book error", err)
	}
	return &b, nil
}
