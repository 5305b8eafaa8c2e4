package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imgupload-go/internal/models"
	"imgupload-go/internal/uploader"
)

func newTestStore(ttl time.Duration) *Store {
	return NewStore(ttl, func() *uploader.Component {
		return uploader.NewComponent(uploader.NewClient(uploader.Endpoint))
	})
}

func TestStore_LookupReturnsMountedComponent(t *testing.T) {
	s := newTestStore(time.Minute)

	id, mounted := s.Mount()
	found, ok := s.Lookup(id)

	require.True(t, ok)
	assert.Same(t, mounted, found)
	assert.True(t, ValidID(id))
	assert.Equal(t, 1, s.Count())
}

func TestStore_LookupUnknownID(t *testing.T) {
	s := newTestStore(time.Minute)

	c, ok := s.Lookup(NewID())

	assert.False(t, ok)
	assert.Nil(t, c)
	assert.Zero(t, s.Count())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	s := newTestStore(time.Minute)

	idA, a := s.Mount()
	idB, b := s.Mount()
	a.OnFileChange([]*models.SelectedFile{{Name: "a.png"}})

	assert.NotEqual(t, idA, idB)
	assert.NotSame(t, a, b)
	assert.Nil(t, b.SelectedFile())
	assert.Equal(t, 2, s.Count())
}

func TestStore_ExpiredSessionIsNotAdopted(t *testing.T) {
	s := newTestStore(20 * time.Millisecond)
	id, _ := s.Mount()

	time.Sleep(50 * time.Millisecond)

	_, ok := s.Lookup(id)
	assert.False(t, ok)
}

func TestStore_LookupExtendsSession(t *testing.T) {
	s := newTestStore(200 * time.Millisecond)
	id, mounted := s.Mount()

	// Each lookup happens before the previous deadline, so the session stays
	// alive well past a single ttl.
	for i := 0; i < 4; i++ {
		time.Sleep(100 * time.Millisecond)
		c, ok := s.Lookup(id)
		require.True(t, ok, "lookup %d", i)
		assert.Same(t, mounted, c)
	}
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("not-a-uuid"))
}
