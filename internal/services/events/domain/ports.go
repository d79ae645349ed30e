package domain

import "context"

// EmitterPort publishes events; it never fails the caller
type EmitterPort interface {
	Emit(ctx context.Context, e Event)
}

// Sink receives events from the emitter
type Sink interface {
	Accept(ctx context.Context, e Event) error
	Close(ctx context.Context) error
}
