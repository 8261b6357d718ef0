package shooter

// Registry owns every entity, stored per category.
// Destroyed entities are unlinked from handle lookup immediately and
// compacted out of their category list by Sweep.
type Registry struct {
	next     Handle
	lists    [categoryCount][]*Entity
	byHandle map[Handle]*Entity
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byHandle: make(map[Handle]*Entity)}
}

// Add assigns a fresh handle to e, marks it active and stores it.
func (r *Registry) Add(e *Entity) *Entity {
	r.next++
	e.Handle = r.next
	e.Active = true
	r.lists[e.Category] = append(r.lists[e.Category], e)
	r.byHandle[e.Handle] = e
	return e
}

// Get resolves a handle to a live entity.
func (r *Registry) Get(h Handle) (*Entity, bool) {
	e, ok := r.byHandle[h]
	return e, ok
}

// Alive reports whether the handle refers to a live entity.
func (r *Registry) Alive(h Handle) bool {
	_, ok := r.byHandle[h]
	return ok
}

// Destroy deactivates an entity. Destroying an inactive entity is a no-op
// and returns false.
func (r *Registry) Destroy(e *Entity) bool {
	if e == nil || !e.Active {
		return false
	}
	e.Active = false
	delete(r.byHandle, e.Handle)
	return true
}

// Each returns the category list. It may contain entities destroyed since
// the last Sweep; callers skip those by checking Active.
func (r *Registry) Each(c Category) []*Entity {
	return r.lists[c]
}

// Active returns a copy of the live entities of a category.
func (r *Registry) Active(c Category) []*Entity {
	out := make([]*Entity, 0, len(r.lists[c]))
	for _, e := range r.lists[c] {
		if e.Active {
			out = append(out, e)
		}
	}
	return out
}

// Count returns the number of live entities in a category.
func (r *Registry) Count(c Category) int {
	n := 0
	for _, e := range r.lists[c] {
		if e.Active {
			n++
		}
	}
	return n
}

// Sweep removes inactive entities from all category lists.
func (r *Registry) Sweep() {
	for c := range r.lists {
		list := r.lists[c]
		kept := list[:0]
		for _, e := range list {
			if e.Active {
				kept = append(kept, e)
			}
		}
		for i := len(kept); i < len(list); i++ {
			list[i] = nil
		}
		r.lists[c] = kept
	}
}

// Clear destroys every entity in the given categories.
func (r *Registry) Clear(categories ...Category) {
	for _, c := range categories {
		for _, e := range r.lists[c] {
			r.Destroy(e)
		}
		clear(r.lists[c])
		r.lists[c] = r.lists[c][:0]
	}
}

// Reset empties the registry. Handles keep increasing across resets.
func (r *Registry) Reset() {
	r.Clear(Categories...)
}
