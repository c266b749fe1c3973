package geocache

import (
	"errors"
	"fmt"
	"sync"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
)

// ErrCacheReset is returned when an operation failed half-way. The cache
// has been emptied and is usable again.
var ErrCacheReset = errors.New("cache operation failed, cache has been reset")

// ErrLookupFailed is returned when a lookup failed half-way. The cache is
// left as it was.
var ErrLookupFailed = errors.New("cache lookup failed")

// SyncCache guards a Cache with a lock. Writes are exclusive, lookups may
// run concurrently.
//
// A panic inside an operation never leaves the lock held. If a write
// panics the cache is cleared and ErrCacheReset is returned, a panicking
// lookup returns ErrLookupFailed.
type SyncCache struct {
	cache *Cache
	lock  sync.RWMutex
}

func NewSync(c *Cache) *SyncCache {
	return &SyncCache{cache: c}
}

// recoverReset must be deferred after the lock is taken, it runs before
// the unlock.
func (s *SyncCache) recoverReset(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	log.WithFields(logrus.Fields{
		"func":  op,
		"panic": r,
	}).Error("operation panicked, resetting cache")
	s.cache.Clear()
	*err = fmt.Errorf("%s: %v: %w", op, r, ErrCacheReset)
}

func (s *SyncCache) Set(payload string, box BoundingBox, ref *orb.Point) (res SetNotChanged, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	defer s.recoverReset("Set", &err)
	return s.cache.Set(payload, box, ref), nil
}

func (s *SyncCache) SetWithMaxLength(payload string, box BoundingBox, ref orb.Point, maxLength float64) (res SetResult, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	defer s.recoverReset("SetWithMaxLength", &err)
	return s.cache.SetWithMaxLength(payload, box, ref, maxLength), nil
}

func (s *SyncCache) Get(pt orb.Point) (payload string, found bool, err error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	defer s.recoverRead("Get", &err)
	payload, found = s.cache.Get(pt)
	return payload, found, nil
}

func (s *SyncCache) Lookup(pt orb.Point) (payloads []string, err error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	defer s.recoverRead("Lookup", &err)
	return s.cache.Lookup(pt), nil
}

func (s *SyncCache) Matches(pt orb.Point) (matches []Match, err error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	defer s.recoverRead("Matches", &err)
	return s.cache.Matches(pt), nil
}

// recoverRead is recoverReset for operations holding the read lock. Reads
// don't modify the index, so there is nothing to reset.
func (s *SyncCache) recoverRead(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	log.WithFields(logrus.Fields{
		"func":  op,
		"panic": r,
	}).Error("lookup panicked")
	*err = fmt.Errorf("%s: %v: %w", op, r, ErrLookupFailed)
}

func (s *SyncCache) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.cache.Clear()
}

func (s *SyncCache) Stats() Stats {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.cache.Stats()
}
