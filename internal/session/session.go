package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"imgupload-go/internal/uploader"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "imgupload_session"

// Store keeps one upload component per browser session. A session that is
// not touched for ttl is dropped, and the next request mounts a fresh
// component with no selection and no result.
type Store struct {
	cache   *cache.Cache
	ttl     time.Duration
	factory func() *uploader.Component
}

// NewStore creates a session store. factory mounts a new component.
func NewStore(ttl time.Duration, factory func() *uploader.Component) *Store {
	c := cache.New(ttl, ttl/2)
	c.OnEvicted(func(id string, _ interface{}) {
		log.Debug().
			Str("session", id).
			Msg("session expired, component unmounted")
	})

	return &Store{
		cache:   c,
		ttl:     ttl,
		factory: factory,
	}
}

// NewID returns a fresh random session ID.
func NewID() string {
	return uuid.NewString()
}

// Lookup returns the component owned by id and extends the session. Unknown
// or expired IDs are not adopted.
func (s *Store) Lookup(id string) (*uploader.Component, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}

	c := v.(*uploader.Component)
	s.cache.SetDefault(id, c)
	return c, true
}

// Mount starts a new session with a fresh component and returns its ID.
func (s *Store) Mount() (string, *uploader.Component) {
	id := NewID()
	c := s.factory()
	s.cache.SetDefault(id, c)

	log.Debug().
		Str("session", id).
		Dur("ttl", s.ttl).
		Msg("component mounted")

	return id, c
}

// TTL returns the idle time after which a session is dropped.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// ValidID reports whether id looks like an ID issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
