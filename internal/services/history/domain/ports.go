package domain

import "context"

// RecorderPort appends entries to a session's history
type RecorderPort interface {
	Record(ctx context.Context, in RecordInput) (Entry, error)
}

// QueryPort reads and clears a session's history
type QueryPort interface {
	List(ctx context.Context, session string) ([]Entry, error)
	Clear(ctx context.Context, session string) (int, error)
}

// HistoryPort is the full history surface
type HistoryPort interface {
	RecorderPort
	QueryPort
}
