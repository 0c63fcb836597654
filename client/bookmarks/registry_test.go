package bookmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "anders+0", Key("anders", 0))
	assert.Equal(t, "beate+17", Key("beate", 17))
}

func TestRegistryToggle(t *testing.T) {
	r := NewRegistry()
	key := Key("anders", 3)

	assert.False(t, r.Contains(key))

	assert.True(t, r.Toggle(key), "first toggle adds")
	assert.True(t, r.Contains(key))
	assert.Equal(t, 1, r.Len())

	assert.False(t, r.Toggle(key), "second toggle removes")
	assert.False(t, r.Contains(key))
	assert.Equal(t, 0, r.Len())

	// A double toggle lands back where it started.
	r.Toggle(key)
	r.Toggle(key)
	assert.False(t, r.Contains(key))
}

func TestRegistryKeysAreIndependent(t *testing.T) {
	r := NewRegistry()

	// Same owner, different position: distinct bookmarks.
	r.Toggle(Key("anders", 0))
	r.Toggle(Key("anders", 1))
	assert.Equal(t, 2, r.Len())

	// Same position, different owner: also distinct.
	r.Toggle(Key("beate", 0))
	assert.Equal(t, 3, r.Len())

	r.Toggle(Key("anders", 0))
	assert.False(t, r.Contains(Key("anders", 0)))
	assert.True(t, r.Contains(Key("anders", 1)))
	assert.True(t, r.Contains(Key("beate", 0)))
}
