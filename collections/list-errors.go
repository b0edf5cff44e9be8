package collections

import (
	"errors"

	"github.com/Invicton-Labs/go-stackerr"
)

var (
	// ErrIndexOutOfRange is matched by errors returned from list operations
	// given a position outside of the operation's valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotFound is matched by errors returned from a search that found no
	// equal element.
	ErrNotFound = errors.New("item not found")
)

func (l *SinglyLinkedList[T]) indexError(op string, index int) stackerr.Error {
	return stackerr.Wrap(ErrIndexOutOfRange).With(map[string]any{
		"op":     op,
		"index":  index,
		"length": l.length,
	})
}

func notFoundError(item any) stackerr.Error {
	return stackerr.Wrap(ErrNotFound).With(map[string]any{
		"item": item,
	})
}
