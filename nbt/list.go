package nbt

import "iter"

// List is a homogeneous sequence tag. Every element shares one payload type,
// declared once in the list header; the decoder guarantees each element's
// Type() equals Subtype().
//
// An empty list may declare TypeEnd as its element type, which is how most
// writers encode a list with nothing in it.
type List struct {
	elem  TagType
	items []Tag
}

var _ Tag = (*List)(nil)

func (l *List) Type() TagType { return TypeList }

// Subtype returns the element type shared by all entries.
func (l *List) Subtype() TagType { return l.elem }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns the element at index i. It panics if i is out of range, the
// same contract as indexing a slice.
func (l *List) At(i int) Tag { return l.items[i] }

// All iterates over the elements in order with their indices.
func (l *List) All() iter.Seq2[int, Tag] {
	return func(yield func(int, Tag) bool) {
		for i, item := range l.items {
			if !yield(i, item) {
				return
			}
		}
	}
}
