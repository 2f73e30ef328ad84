package errorvalues

import (
	"errors"
	"fmt"
)

// Categories. Every error returned by services matches at most one of them with errors.Is.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyCompleted = errors.New("chapter already completed")
	ErrTransientStorage = errors.New("transient storage error")
)

var (
	ErrUserNotFound    = fmt.Errorf("user doesn't exist: %w", ErrNotFound)
	ErrChapterNotFound = fmt.Errorf("chapter doesn't exist: %w", ErrNotFound)
	ErrBookNotFound    = fmt.Errorf("book doesn't exist: %w", ErrNotFound)
	ErrUserExists      = errors.New("progress for such user already exists")
	ErrInvalidToken    = errors.New("invalid token")
)
