package stack_test

import (
	"testing"

	"go.arcalot.io/assert"
	"go.flow.arcalot.io/stepflow/internal/stack"
)

func TestStack(t *testing.T) {
	stk := stack.NewStack[int]()

	_, ok := stk.Pop()
	assert.Equals(t, ok, false)
	_, ok = stk.Top()
	assert.Equals(t, ok, false)
	max := 5

	for i := 0; i < max; i++ {
		stk.Push(i)
	}
	assert.Equals(t, stk.Empty(), false)
	assert.Equals(t, stk.Values(), []int{0, 1, 2, 3, 4})

	for i := 0; i < max; i++ {
		assert.Equals(t, stk.Size(), max-i)
		top, ok := stk.Top()
		assert.Equals(t, ok, true)
		assert.Equals(t, top, max-1-i)
		stk.Pop()
	}

	assert.Equals(t, stk.Empty(), true)
}

func TestStackDrain(t *testing.T) {
	stk := stack.NewStack[func() string]()
	stk.Push(func() string { return "first" })
	stk.Push(func() string { return "second" })

	var order []string
	stk.Drain(func(fn func() string) {
		order = append(order, fn())
	})
	assert.Equals(t, order, []string{"second", "first"})
	assert.Equals(t, stk.Empty(), true)
}
