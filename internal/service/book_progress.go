package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/internal/gamification"
	"github.com/limbo/lectio/internal/repository"
	"github.com/limbo/lectio/pkg/entity"
)

func bookView(book entity.Book, bp *entity.BookProgress) entity.BookProgressView {
	view := entity.BookProgressView{
		BookID:        book.ID,
		BookName:      book.Name,
		TotalChapters: book.TotalChapters,
		NextUnlocked:  1,
	}
	if bp == nil {
		return view
	}
	view.ChaptersCompleted = bp.ChaptersCompleted
	view.LastChapterRead = bp.LastChapterRead
	view.Percentage = gamification.BookPercentage(bp.ChaptersCompleted, book.TotalChapters)
	view.CompletedAt = bp.CompletedAt
	view.NextUnlocked = 0
	if next := bp.LastChapterRead + 1; next <= book.TotalChapters {
		view.NextUnlocked = next
	}
	return view
}

func recordChapterInBook(ctx context.Context, repos *repository.Repositories, uid uuid.UUID, chapter *entity.Chapter, now time.Time) (entity.BookProgressView, *entity.BookProgress, error) {
	bp, err := repos.Books.Find(ctx, uid, chapter.BookID)
	if err != nil {
		return entity.BookProgressView{}, nil, err
	}
	if bp == nil {
		bp = &entity.BookProgress{UserID: uid, BookID: chapter.BookID}
	}
	wasCompleted := bp.CompletedAt != nil
	bp.ChaptersCompleted++
	bp.LastChapterRead = max(bp.LastChapterRead, chapter.Number)
	if !wasCompleted && bp.ChaptersCompleted >= chapter.Book.TotalChapters {
		ts := now
		bp.CompletedAt = &ts
	}
	if err := repos.Books.Upsert(ctx, bp); err != nil {
		return entity.BookProgressView{}, nil, err
	}
	view := bookView(chapter.Book, bp)
	view.JustCompleted = !wasCompleted && bp.CompletedAt != nil
	return view, bp, nil
}

// nextChapter points at the chapter after the completed one, or nil at the end of the book.
func nextChapter(ctx context.Context, repos *repository.Repositories, chapter *entity.Chapter, bp *entity.BookProgress) (*entity.NextChapter, error) {
	if chapter.Number >= chapter.Book.TotalChapters {
		return nil, nil
	}
	next, err := repos.Content.GetChapterByNumber(ctx, chapter.BookID, chapter.Number+1)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChapterNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity.NextChapter{
		ID:       next.ID,
		Number:   next.Number,
		Unlocked: gamification.IsChapterUnlocked(next.Number, bp.LastChapterRead),
	}, nil
}

func (rs *ReadingService) GetBookProgress(ctx context.Context, uid, bookID uuid.UUID) (*entity.BookProgressView, error) {
	var view entity.BookProgressView
	err := rs.inTx(ctx, "getting book progress", func(ctx context.Context, repos *repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, uid); err != nil {
			return err
		}
		book, err := repos.Content.GetBook(ctx, bookID)
		if err != nil {
			return err
		}
		bp, err := repos.Books.Find(ctx, uid, bookID)
		if err != nil {
			return err
		}
		view = bookView(*book, bp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (rs *ReadingService) IsChapterUnlocked(ctx context.Context, uid, bookID uuid.UUID, number int) (bool, error) {
	var unlocked bool
	err := rs.inTx(ctx, "checking chapter unlock", func(ctx context.Context, repos *repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, uid); err != nil {
			return err
		}
		if _, err := repos.Content.GetChapterByNumber(ctx, bookID, number); err != nil {
			return err
		}
		bp, err := repos.Books.Find(ctx, uid, bookID)
		if err != nil {
			return err
		}
		last := 0
		if bp != nil {
			last = bp.LastChapterRead
		}
		unlocked = gamification.IsChapterUnlocked(number, last)
		return nil
	})
	if err != nil {
		return false, err
	}
	return unlocked, nil
}
