package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookProgress(t *testing.T) {
	ctx := context.Background()
	book := &entity.Book{ID: uuid.New(), Name: "Jonah", TotalChapters: 4}

	t.Run("not started", func(t *testing.T) {
		f := newFixture(t)
		f.passThrough()
		user := newUser(0, nil)
		f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.content.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)
		f.books.EXPECT().Find(gomock.Any(), user.ID, book.ID).Return(nil, nil)
		view, err := f.svc.GetBookProgress(ctx, user.ID, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, view.ChaptersCompleted)
		assert.Equal(t, 1, view.NextUnlocked)
		assert.Equal(t, "Jonah", view.BookName)
	})
	t.Run("half way", func(t *testing.T) {
		f := newFixture(t)
		f.passThrough()
		user := newUser(0, nil)
		f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.content.EXPECT().GetBook(gomock.Any(), book.ID).Return(book, nil)
		f.books.EXPECT().Find(gomock.Any(), user.ID, book.ID).Return(&entity.BookProgress{ChaptersCompleted: 2, LastChapterRead: 2}, nil)
		view, err := f.svc.GetBookProgress(ctx, user.ID, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 50, view.Percentage)
		assert.Equal(t, 3, view.NextUnlocked)
		assert.Nil(t, view.CompletedAt)
	})
	t.Run("unknown book", func(t *testing.T) {
		f := newFixture(t)
		f.passThrough()
		user := newUser(0, nil)
		f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.content.EXPECT().GetBook(gomock.Any(), book.ID).Return(nil, errorvalues.ErrBookNotFound)
		_, err := f.svc.GetBookProgress(ctx, user.ID, book.ID)
		assert.ErrorIs(t, err, errorvalues.ErrBookNotFound)
	})
}

func TestIsChapterUnlocked(t *testing.T) {
	bookID := uuid.New()
	testCases := []struct {
		Desc     string
		Number   int
		Progress *entity.BookProgress
		Result   bool
	}{
		{Desc: "first chapter of unread book", Number: 1, Progress: nil, Result: true},
		{Desc: "second chapter of unread book", Number: 2, Progress: nil, Result: false},
		{Desc: "one past last read", Number: 4, Progress: &entity.BookProgress{LastChapterRead: 3}, Result: true},
		{Desc: "two past last read", Number: 5, Progress: &entity.BookProgress{LastChapterRead: 3}, Result: false},
		{Desc: "already read", Number: 2, Progress: &entity.BookProgress{LastChapterRead: 3}, Result: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			f := newFixture(t)
			f.passThrough()
			user := newUser(0, nil)
			f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
			f.content.EXPECT().GetChapterByNumber(gomock.Any(), bookID, tc.Number).Return(&entity.Chapter{Number: tc.Number, BookID: bookID}, nil)
			f.books.EXPECT().Find(gomock.Any(), user.ID, bookID).Return(tc.Progress, nil)
			unlocked, err := f.svc.IsChapterUnlocked(context.Background(), user.ID, bookID, tc.Number)
			require.NoError(t, err)
			assert.Equal(t, tc.Result, unlocked)
		})
	}

	t.Run("chapter outside the book", func(t *testing.T) {
		f := newFixture(t)
		f.passThrough()
		user := newUser(0, nil)
		f.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		f.content.EXPECT().GetChapterByNumber(gomock.Any(), bookID, 99).Return(nil, errorvalues.ErrChapterNotFound)
		_, err := f.svc.IsChapterUnlocked(context.Background(), user.ID, bookID, 99)
		assert.ErrorIs(t, err, errorvalues.ErrChapterNotFound)
	})
	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.passThrough()
		uid := uuid.New()
		f.users.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		unlocked, err := f.svc.IsChapterUnlocked(context.Background(), uid, bookID, 1)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.False(t, unlocked)
	})
}
