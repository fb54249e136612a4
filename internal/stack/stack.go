// Package stack provides a generic last-in-first-out stack.
package stack

// Stack is a last-in-first-out list of values.
type Stack[T any] interface {
	Empty() bool
	Size() int
	// Top returns the last pushed value without removing it.
	Top() (T, bool)
	Push(T)
	Pop() (T, bool)
	// Drain pops every value, calling fn with each one in last-in-first-out order.
	Drain(fn func(T))
	Values() []T
}

// NewStack creates an empty stack.
func NewStack[T any]() Stack[T] {
	return &stack[T]{}
}

type stack[T any] []T

func (s stack[T]) Empty() bool {
	return s.Size() == 0
}

func (s stack[T]) Size() int {
	return len(s)
}

func (s stack[T]) Top() (T, bool) {
	if s.Empty() {
		var zero T
		return zero, false
	}
	return s[len(s)-1], true
}

func (s *stack[T]) Push(element T) {
	*s = append(*s, element)
}

func (s *stack[T]) Pop() (T, bool) {
	top, ok := s.Top()
	if !ok {
		return top, false
	}
	*s = (*s)[:len(*s)-1]
	return top, true
}

func (s *stack[T]) Drain(fn func(T)) {
	for {
		top, ok := s.Pop()
		if !ok {
			return
		}
		fn(top)
	}
}

func (s stack[T]) Values() []T {
	return append([]T(nil), s...)
}
