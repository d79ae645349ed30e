// Package repokit binds domain repos to a store querier
package repokit

import (
	"context"
	"fmt"

	"langshift/internal/platform/store"
)

type (
	// Queryer is the read and write surface SQL repos are bound to
	Queryer = store.RowQuerier

	// TxRunner opens transactions on top of a Queryer
	TxRunner = store.TxRunner
)

// Binder binds a domain repo to a specific Queryer, usually a transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a function to Binder
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds q and panics when it is nil
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}

// Guarder is satisfied by *store.Store
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard pings every configured backend and panics when one does not answer
func MustGuard(ctx context.Context, g Guarder) {
	if err := g.Guard(ctx); err != nil {
		panic(fmt.Errorf("repokit: dependency guard failed: %w", err))
	}
}
