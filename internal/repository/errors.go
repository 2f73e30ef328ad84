package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/lectio/internal/error_values"
)

const (
	codeUniqueViolation     = "23505"
	codeFKViolation         = "23503"
	codeCheckViolation      = "23514"
	codeSerializationFail   = "40001"
	codeDeadlockDetected    = "40P01"
	codeLockNotAvailable    = "55P03"
	classConnectionFailures = "08"
)

func pgErrCode(err error) (string, *pgconn.PgError) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr
	}
	return "", nil
}

// IsTransient reports whether retrying the whole transaction may succeed.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errorvalues.ErrTransientStorage) {
		return true
	}
	code, _ := pgErrCode(err)
	switch {
	case code == codeSerializationFail, code == codeDeadlockDetected, code == codeLockNotAvailable:
		return true
	case strings.HasPrefix(code, classConnectionFailures):
		return true
	}
	return pgconn.SafeToRetry(err)
}

// dbError formats "<msg>: <cause>" and tags retryable causes with ErrTransientStorage.
func dbError(msg string, err error) error {
	if IsTransient(err) {
		return fmt.Errorf("%s: %w: %w", msg, errorvalues.ErrTransientStorage, err)
	}
	return errors.New(msg + ": " + err.Error())
}
