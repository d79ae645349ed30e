// Package repo provides conversion history storage backends
package repo

import (
	"context"

	"langshift/internal/services/history/domain"
)

// Storage persists history entries per session, newest first
type Storage interface {
	// Push stores e at the front of the session log and evicts everything beyond capacity
	Push(ctx context.Context, session string, e domain.Entry, capacity int) error
	List(ctx context.Context, session string, limit int) ([]domain.Entry, error)
	Clear(ctx context.Context, session string) (int, error)
}
