package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_InternIsStable(t *testing.T) {
	r := NewRegistry()

	seed := r.Intern("seed")
	soil := r.Intern("soil")

	assert.NotEqual(t, seed, soil)
	assert.Equal(t, seed, r.Intern("seed"))
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_LookupAndName(t *testing.T) {
	var r Registry

	id := r.Intern("location")

	got, ok := r.Lookup("location")
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Equal(t, "location", r.Name(id))

	_, ok = r.Lookup("humidity")
	assert.False(t, ok)
	assert.Equal(t, "category(7)", r.Name(7))
}

func TestRegistry_NilName(t *testing.T) {
	var r *Registry
	assert.Equal(t, "category(0)", r.Name(0))
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	r.Intern("seed")
	r.Intern("soil")
	r.Intern("seed")

	names := r.Names()
	assert.Equal(t, []string{"seed", "soil"}, names)

	names[0] = "changed"
	assert.Equal(t, "seed", r.Name(0))
}
