package store

import "context"

type sessionKey struct{}

// WithSession attaches a client session id to the context; traced queries carry it
func WithSession(ctx context.Context, session string) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionID retrieves a session id from context if present
func SessionID(ctx context.Context) (string, bool) {
	s, _ := ctx.Value(sessionKey{}).(string)
	return s, s != ""
}

// RunInSession tags ctx with session and runs fn inside one transaction
func RunInSession(ctx context.Context, tx TxRunner, session string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithSession(ctx, session)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
