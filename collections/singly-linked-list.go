package collections

import (
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-stackerr"
)

// node is a single link in a SinglyLinkedList. Nodes are owned by exactly
// one list and are never exposed outside of this package.
type node[T comparable] struct {
	item T
	next *node[T]
}

// SinglyLinkedList is an indexed sequence backed by a chain of singly-linked
// nodes. The number of elements is cached so Len is O(1); all indexed access
// is O(n).
//
// The zero value is an empty list ready to use. A SinglyLinkedList is not
// safe for concurrent use; see gensync.LinkedList for a locked wrapper.
type SinglyLinkedList[T comparable] struct {
	head   *node[T]
	length int
}

// NewSinglyLinkedList will create a list holding the given items in order.
// A nil or empty slice produces an empty list.
func NewSinglyLinkedList[T comparable](items []T) *SinglyLinkedList[T] {
	l := &SinglyLinkedList[T]{}
	if len(items) == 0 {
		return l
	}
	l.head = &node[T]{item: items[0]}
	curr := l.head
	for _, item := range items[1:] {
		curr.next = &node[T]{item: item}
		curr = curr.next
	}
	l.length = len(items)
	return l
}

// IsEmpty returns whether the list has no elements.
func (l *SinglyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements in the list.
func (l *SinglyLinkedList[T]) Len() int {
	return l.length
}

// String renders the list as `[a -> b -> c]`, or `[]` when empty.
func (l *SinglyLinkedList[T]) String() string {
	parts := TransformSlice(l.Values(), func(value T) string {
		return fmt.Sprint(value)
	})
	return "[" + strings.Join(parts, " -> ") + "]"
}

// Index returns the position of the first element equal to item. If no
// element matches, the returned error matches ErrNotFound.
func (l *SinglyLinkedList[T]) Index(item T) (int, stackerr.Error) {
	i := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if curr.item == item {
			return i, nil
		}
		i++
	}
	return -1, notFoundError(item)
}

// Get returns the element at the given index.
func (l *SinglyLinkedList[T]) Get(index int) (item T, err stackerr.Error) {
	if index < 0 || index >= l.length {
		return item, l.indexError("get", index)
	}
	return l.nodeAt(index).item, nil
}

// Insert will insert item so that it ends up at the given index, shifting
// every later element back by one. Inserting at Len() appends.
func (l *SinglyLinkedList[T]) Insert(index int, item T) stackerr.Error {
	if index < 0 || index > l.length {
		return l.indexError("insert", index)
	}
	n := &node[T]{item: item}
	if index == 0 {
		n.next = l.head
		l.head = n
	} else {
		prev := l.nodeAt(index - 1)
		n.next = prev.next
		prev.next = n
	}
	l.length++
	return nil
}

// Append will add item to the end of the list.
func (l *SinglyLinkedList[T]) Append(item T) {
	// Len() is always a valid insertion index
	_ = l.Insert(l.length, item)
}

// Pop will remove the element at the given index and return it.
func (l *SinglyLinkedList[T]) Pop(index int) (item T, err stackerr.Error) {
	if index < 0 || index >= l.length {
		return item, l.indexError("pop", index)
	}
	var target *node[T]
	if index == 0 {
		target = l.head
		l.head = target.next
	} else {
		prev := l.nodeAt(index - 1)
		target = prev.next
		prev.next = target.next
	}
	target.next = nil
	l.length--
	return target.item, nil
}

// Set will replace the element at the given index with item. The node at
// that position is swapped for a new one; every other position and the
// length are left untouched.
func (l *SinglyLinkedList[T]) Set(index int, item T) stackerr.Error {
	if index < 0 || index >= l.length {
		return l.indexError("set", index)
	}
	n := &node[T]{item: item}
	var old *node[T]
	if index == 0 {
		old = l.head
		l.head = n
	} else {
		prev := l.nodeAt(index - 1)
		old = prev.next
		prev.next = n
	}
	n.next = old.next
	old.next = nil
	return nil
}

// Values returns a copy of the elements, front to back.
func (l *SinglyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for curr := l.head; curr != nil; curr = curr.next {
		values = append(values, curr.item)
	}
	return values
}

// Range calls fn for each element from front to back and stops early if fn
// returns false. The list must not be modified from within fn.
func (l *SinglyLinkedList[T]) Range(fn func(index int, item T) bool) {
	i := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if !fn(i, curr.item) {
			return
		}
		i++
	}
}

// Clear removes every element, unlinking the whole chain.
func (l *SinglyLinkedList[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.length = 0
}

// nodeAt walks from the head to the node at index. Callers must have
// already checked that 0 <= index < l.length.
func (l *SinglyLinkedList[T]) nodeAt(index int) *node[T] {
	curr := l.head
	for i := 0; i < index; i++ {
		curr = curr.next
	}
	return curr
}
