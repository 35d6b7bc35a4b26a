// Package uploads keeps the result of each spreadsheet upload in
// memory for the duration of a UI session, so the chart and the
// download control of that upload keep working. Nothing is persisted:
// entries disappear on expiry, eviction or restart.
package uploads

import (
	"container/list"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"emissioni/internal/core"
)

// Upload is one stored upload: the original bytes verbatim for
// re-download plus the aggregated series backing the chart.
type Upload struct {
	ID         string
	Filename   string
	Data       []byte
	Buckets    []core.MonthlyBucket
	UploadedAt time.Time
}

// Store is an in-memory upload store with TTL and LRU size eviction.
type Store struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List

	stopCleanup chan struct{}
	stopOnce    sync.Once
}

type entry struct {
	upload    Upload
	expiresAt time.Time
}

// NewStore creates a store holding at most maxSize uploads, each for
// at most ttl, and starts the periodic cleanup goroutine.
func NewStore(maxSize int, ttl time.Duration) *Store {
	s := &Store{
		maxSize:     maxSize,
		ttl:         ttl,
		items:       make(map[string]*list.Element),
		lru:         list.New(),
		stopCleanup: make(chan struct{}),
	}
	go s.startCleanup()
	return s
}

// Put stores an upload, assigns it a fresh ID and returns it.
func (s *Store) Put(u Upload) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = newID()
	u.UploadedAt = time.Now()

	elem := s.lru.PushFront(&entry{upload: u, expiresAt: u.UploadedAt.Add(s.ttl)})
	s.items[u.ID] = elem

	if s.lru.Len() > s.maxSize {
		if oldest := s.lru.Back(); oldest != nil {
			s.removeElement(oldest)
		}
	}
	return u.ID
}

// Get returns the upload for id, refreshing its LRU position. The
// second return is false for unknown or expired IDs.
func (s *Store) Get(id string) (Upload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, exists := s.items[id]
	if !exists {
		return Upload{}, false
	}

	e := elem.Value.(*entry)
	if time.Now().After(e.expiresAt) {
		s.removeElement(elem)
		return Upload{}, false
	}

	s.lru.MoveToFront(elem)
	return e.upload, true
}

// Len returns the number of stored uploads, expired entries included
// until the next cleanup pass.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// CleanExpired removes all expired entries and returns how many.
func (s *Store) CleanExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var toRemove []*list.Element
	for elem := s.lru.Front(); elem != nil; elem = elem.Next() {
		if now.After(elem.Value.(*entry).expiresAt) {
			toRemove = append(toRemove, elem)
		}
	}
	for _, elem := range toRemove {
		s.removeElement(elem)
	}
	return len(toRemove)
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCleanup)
	})
}

func (s *Store) removeElement(elem *list.Element) {
	e := elem.Value.(*entry)
	delete(s.items, e.upload.ID)
	s.lru.Remove(elem)
}

func (s *Store) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.CleanExpired()
		case <-s.stopCleanup:
			return
		}
	}
}

// newID generates an opaque upload identifier.
func newID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("up_%d", time.Now().UnixNano())
	}
	return "up_" + hex.EncodeToString(b)
}
