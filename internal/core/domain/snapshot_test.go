package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot_NonNilSlices(t *testing.T) {
	snap := NewSnapshot()

	assert.NotNil(t, snap.Entities)
	assert.NotNil(t, snap.Relationships)
	assert.NotNil(t, snap.Sources)
	assert.NotNil(t, snap.Media)
	assert.True(t, snap.IsEmpty())
}

func TestSnapshot_EntityByID(t *testing.T) {
	snap := NewSnapshot()
	snap.Entities = []Entity{{ID: "1", Name: "Foo"}, {ID: "1", Name: "Dup"}, {ID: "2", Name: "Bar"}}

	e, ok := snap.EntityByID("1")
	require.True(t, ok)
	assert.Equal(t, "Foo", e.Name)

	_, ok = snap.EntityByID("missing")
	assert.False(t, ok)
	assert.False(t, snap.IsEmpty())
}
