package gensync

import (
	"context"

	"github.com/Invicton-Labs/go-stackerr"
)

// CtxMutex is a mutex where Lock operations use a context
// that can be cancelled/deadlined to terminate the lock
// attempt.
type CtxMutex interface {
	// Lock will wait until either the mutex can be locked, or
	// the context is done. If the context is done first, it
	// returns a stack-wrapped version of the context's error.
	Lock(ctx context.Context) stackerr.Error

	// LockWait will wait until the mutex can be locked, with
	// no way to give up.
	LockWait()

	// TryLock will attempt to lock the mutex without waiting.
	TryLock() (locked bool)

	// Unlock will unlock the mutex, and will panic if the mutex
	// is not currently locked.
	Unlock()

	// TryUnlock will attempt to unlock the mutex, but will not
	// panic if the mutex is not currently locked.
	TryUnlock() (unlocked bool)
}

// A buffered channel with one slot holds the lock token.
type ctxMutex struct {
	ch chan struct{}
}

func NewCtxMutex() CtxMutex {
	return &ctxMutex{
		ch: make(chan struct{}, 1),
	}
}

func (mu *ctxMutex) Lock(ctx context.Context) stackerr.Error {
	// Don't race a ready context against a free lock
	if err := ctx.Err(); err != nil {
		return stackerr.Wrap(err)
	}
	select {
	case <-ctx.Done():
		return stackerr.Wrap(ctx.Err())
	case mu.ch <- struct{}{}:
		return nil
	}
}

func (mu *ctxMutex) LockWait() {
	mu.ch <- struct{}{}
}

func (mu *ctxMutex) TryLock() bool {
	select {
	case mu.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

func (mu *ctxMutex) Unlock() {
	if !mu.TryUnlock() {
		panic("unlock of unlocked mutex")
	}
}

func (mu *ctxMutex) TryUnlock() bool {
	select {
	case <-mu.ch:
		return true
	default:
		return false
	}
}
