// Package category interns category names into opaque identifiers.
//
// Names are resolved once while a pipeline is assembled; afterwards stages
// and pipelines compare IDs only.
package category

import (
	"fmt"
	"slices"
)

// ID identifies a category within one Registry.
type ID int

// Registry assigns IDs to names in first-seen order. The zero value is ready
// to use. It is not safe for concurrent mutation.
type Registry struct {
	ids   map[string]ID
	names []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Intern returns the ID for name, assigning a new one if needed.
func (r *Registry) Intern(name string) ID {
	if id, ok := r.ids[name]; ok {
		return id
	}

	if r.ids == nil {
		r.ids = make(map[string]ID)
	}

	id := ID(len(r.names))
	r.ids[name] = id
	r.names = append(r.names, name)

	return id
}

// Lookup returns the ID of an already interned name.
func (r *Registry) Lookup(name string) (ID, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name returns the name behind id, or a placeholder for unknown IDs.
func (r *Registry) Name(id ID) string {
	if r == nil || id < 0 || int(id) >= len(r.names) {
		return fmt.Sprintf("category(%d)", int(id))
	}

	return r.names[id]
}

// Len returns the number of interned names.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns every interned name in ID order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}
