package gensync

import (
	"context"

	"github.com/Invicton-Labs/go-stackerr"
	"github.com/Mangofish369/CSC148-Labs/collections"
)

// LinkedList is a collections.SinglyLinkedList guarded by a single lock, so
// it can be shared between routines. Errors from the underlying list are
// returned unchanged and still match collections.ErrIndexOutOfRange and
// collections.ErrNotFound.
type LinkedList[T comparable] interface {
	IsEmpty() bool
	Len() int
	String() string
	Index(item T) (int, stackerr.Error)
	Get(index int) (T, stackerr.Error)
	Insert(index int, item T) stackerr.Error
	Append(item T)
	Pop(index int) (T, stackerr.Error)
	Set(index int, item T) stackerr.Error

	// Values returns a COPY of the elements.
	Values() []T

	// Update runs fn while holding the lock, so a sequence of operations
	// is applied without interleaving. Waiting for the lock is abandoned
	// when ctx is done. The list passed to fn must not be retained.
	Update(ctx context.Context, fn func(list *collections.SinglyLinkedList[T]) error) error
}

type linkedList[T comparable] struct {
	l  *collections.SinglyLinkedList[T]
	mu CtxMutex
}

func NewLinkedList[T comparable](initial []T) LinkedList[T] {
	return &linkedList[T]{
		l:  collections.NewSinglyLinkedList(initial),
		mu: NewCtxMutex(),
	}
}

func (s *linkedList[T]) IsEmpty() bool {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.IsEmpty()
}

func (s *linkedList[T]) Len() int {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.Len()
}

func (s *linkedList[T]) String() string {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.String()
}

func (s *linkedList[T]) Index(item T) (int, stackerr.Error) {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.Index(item)
}

func (s *linkedList[T]) Get(index int) (T, stackerr.Error) {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.Get(index)
}

func (s *linkedList[T]) Insert(index int, item T) stackerr.Error {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.Insert(index, item)
}

func (s *linkedList[T]) Append(item T) {
	s.mu.LockWait()
	defer s.mu.Unlock()
	s.l.Append(item)
}

func (s *linkedList[T]) Pop(index int) (T, stackerr.Error) {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.Pop(index)
}

func (s *linkedList[T]) Set(index int, item T) stackerr.Error {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.Set(index, item)
}

func (s *linkedList[T]) Values() []T {
	s.mu.LockWait()
	defer s.mu.Unlock()
	return s.l.Values()
}

func (s *linkedList[T]) Update(ctx context.Context, fn func(list *collections.SinglyLinkedList[T]) error) error {
	if err := s.mu.Lock(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	return fn(s.l)
}
