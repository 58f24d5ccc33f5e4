package nbt

import "iter"

type compoundEntry struct {
	name string
	tag  Tag
}

// Compound is a named collection tag. Entries keep the order in which their
// names first appeared in the input, and lookups by name are constant time.
//
// When the input repeats a name, the later value replaces the earlier one
// while the entry stays at its original position, matching how the reference
// readers load such data.
type Compound struct {
	entries []compoundEntry
	index   map[string]int
}

var _ Tag = (*Compound)(nil)

func newCompound() *Compound {
	return &Compound{index: make(map[string]int)}
}

// set inserts or replaces the entry for name.
func (c *Compound) set(name string, tag Tag) {
	if i, ok := c.index[name]; ok {
		c.entries[i].tag = tag
		return
	}

	c.index[name] = len(c.entries)
	c.entries = append(c.entries, compoundEntry{name: name, tag: tag})
}

func (c *Compound) Type() TagType { return TypeCompound }

// Get returns the tag stored under name.
func (c *Compound) Get(name string) (Tag, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}

	return c.entries[i].tag, true
}

// Len returns the number of distinct names.
func (c *Compound) Len() int { return len(c.entries) }

// All iterates over the entries in first-insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		for _, e := range c.entries {
			if !yield(e.name, e.tag) {
				return
			}
		}
	}
}

// Get returns the tag stored under name in c, narrowed to the concrete type
// T. It returns the zero value and false when the name is absent or holds a
// different type.
//
// Example:
//
//	version, ok := nbt.Get[nbt.Int](root, "DataVersion")
func Get[T Tag](c *Compound, name string) (T, bool) {
	var zero T

	tag, ok := c.Get(name)
	if !ok {
		return zero, false
	}

	v, ok := tag.(T)
	if !ok {
		return zero, false
	}

	return v, true
}
