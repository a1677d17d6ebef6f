package variant

import (
	"iter"

	"github.com/wippyai/variant/internal/abi"
)

// Array is an ordered, heterogeneous sequence of Variants. It owns its
// elements: Push and Set take ownership of the value passed in, and Get
// returns a borrowed value that stays valid until the element is replaced
// or the array is freed.
type Array struct {
	items []Variant
}

// NewArray returns an array holding items. It takes ownership of them.
func NewArray(items ...Variant) *Array {
	return &Array{items: append([]Variant(nil), items...)}
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.items)
}

// Get returns the element at i. It panics if i is out of range.
func (a *Array) Get(i int) Variant {
	return a.items[i]
}

// Set replaces the element at i, releasing the previous one.
func (a *Array) Set(i int, v Variant) {
	old := a.items[i]
	a.items[i] = v
	old.Release()
}

func (a *Array) Push(v Variant) {
	a.items = append(a.items, v)
}

// Resize grows the array with Nil or shrinks it, releasing dropped items.
// The length comes from the foreign side; one that does not fit a host int
// panics.
func (a *Array) Resize(n int64) {
	size := abi.MustLen(n)
	for i := size; i < len(a.items); i++ {
		a.items[i].Release()
	}
	if size <= len(a.items) {
		a.items = a.items[:size]
		return
	}
	a.items = append(a.items, make([]Variant, size-len(a.items))...)
}

// Iter yields index and element pairs in order.
func (a *Array) Iter() iter.Seq2[int, Variant] {
	return func(yield func(int, Variant) bool) {
		if a == nil {
			return
		}
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns a copy of the element list. The elements are borrowed.
func (a *Array) Slice() []Variant {
	if a == nil {
		return nil
	}
	return append([]Variant(nil), a.items...)
}

func (a *Array) releaseAll() {
	for i := range a.items {
		a.items[i].Release()
	}
	a.items = nil
}
