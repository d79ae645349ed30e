package errors

import (
	"context"
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// FromPG classifies a postgres failure: connection trouble, serialization
// conflicts and timeouts become Unavailable, everything else DB
func FromPG(err error, op string) error {
	if err == nil {
		return nil
	}
	if _, ok := As(err); ok {
		return err
	}
	code := ErrorCodeDB
	if Retryable(err) {
		code = ErrorCodeUnavailable
	}
	return WithOp(Wrap(err, code, "storage"), op)
}

// Retryable reports whether err is worth another attempt
func Retryable(err error) bool {
	if stderrs.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pe *pgconn.PgError
	if stderrs.As(err, &pe) {
		switch {
		case len(pe.Code) == 5 && pe.Code[:2] == "08": // connection exception class
			return true
		case pe.Code == "40001", pe.Code == "40P01", pe.Code == "55P03", pe.Code == "57P03":
			return true
		}
		return false
	}
	return pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}
