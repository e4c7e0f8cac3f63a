package panel

import "fmt"

// Registry is an ordered, immutable set of descriptors.
type Registry struct {
	entries []Descriptor
	index   map[string]int
}

// NewRegistry validates the descriptors and freezes their order.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	if len(descs) == 0 {
		return nil, ErrEmptyRegistry
	}
	r := &Registry{
		entries: make([]Descriptor, 0, len(descs)),
		index:   make(map[string]int, len(descs)),
	}
	for _, d := range descs {
		if err := d.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePanel, d.ID)
		}
		r.index[d.ID] = len(r.entries)
		r.entries = append(r.entries, d)
	}
	return r, nil
}

// List returns the descriptors in registry order.
func (r *Registry) List() []Descriptor {
	dup := make([]Descriptor, len(r.entries))
	copy(dup, r.entries)
	return dup
}

// Find locates a descriptor by ID.
func (r *Registry) Find(id string) (Descriptor, bool) {
	idx, ok := r.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.entries[idx], true
}

// IndexOf returns the position of id, or -1.
func (r *Registry) IndexOf(id string) int {
	if idx, ok := r.index[id]; ok {
		return idx
	}
	return -1
}

// At returns the descriptor at position i.
func (r *Registry) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(r.entries) {
		return Descriptor{}, false
	}
	return r.entries[i], true
}

func (r *Registry) Len() int {
	return len(r.entries)
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}
