// Package bridge adapts one-shot callback pairs into awaitable results.
//
// The host platform reports completion of directory reads and file
// resolution through (success, error) callback pairs that each fire at most
// once. Operation correlates one such call with one settlement slot: the
// first callback firing settles it, later firings are discarded, and waiting
// is context-aware so an abandoned caller never leaves a handler dangling.
package bridge

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StartFunc invokes the underlying platform call, passing it the two
// settlement callbacks. It must eventually cause exactly one of them to fire;
// duplicate firings are tolerated and ignored.
type StartFunc[T any] func(succeed func(T), fail func(error))

type outcome[T any] struct {
	value T
	err   error
}

// Operation is one outstanding callback-style call correlated to one
// settlement slot. It settles exactly once; the settlement channel is
// buffered so a late-firing callback after the awaiter gave up settles into
// the buffer and is dropped with the Operation, never blocking the platform.
type Operation[T any] struct {
	id     string
	once   sync.Once
	settle chan outcome[T]
}

// New creates an unsettled Operation.
func New[T any]() *Operation[T] {
	return &Operation[T]{
		id:     uuid.NewString(),
		settle: make(chan outcome[T], 1),
	}
}

// ID returns the operation's correlation ID for logging.
func (o *Operation[T]) ID() string { return o.id }

// Succeed settles the operation with a value. No-op if already settled.
func (o *Operation[T]) Succeed(v T) {
	o.once.Do(func() {
		o.settle <- outcome[T]{value: v}
	})
}

// Fail settles the operation with an error. No-op if already settled.
func (o *Operation[T]) Fail(err error) {
	o.once.Do(func() {
		o.settle <- outcome[T]{err: err}
	})
}

// Wait blocks until the operation settles or ctx is done, whichever comes
// first. On ctx expiry it returns ctx.Err(); a settlement arriving afterwards
// is discarded by the idempotence guard.
func (o *Operation[T]) Wait(ctx context.Context) (T, error) {
	select {
	case out := <-o.settle:
		return out.value, out.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Await runs start with a fresh Operation's callbacks and waits for the
// result. This is the package's main entry point:
//
//	entries, err := bridge.Await(ctx, func(succeed func([]Entry), fail func(error)) {
//		reader.ReadEntries(succeed, fail)
//	})
//
// The callbacks hold the only references to the Operation; once it settles
// and Await returns, everything is garbage. There is no registry of live
// handlers to leak.
func Await[T any](ctx context.Context, start StartFunc[T]) (T, error) {
	op := New[T]()
	start(op.Succeed, op.Fail)
	return op.Wait(ctx)
}
