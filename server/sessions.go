package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ImplantacaoMW/datacheckai/importer"
)

// batchFile is one successfully parsed upload held between the upload and
// the analyze call.
type batchFile struct {
	Name    string
	Dataset *importer.Dataset
	AutoMap map[string]string
}

// batch is the server-side state of one upload round. The client gets back
// only its ID and echoes it on the analyze call.
type batch struct {
	ID       string
	LayoutID string
	Files    map[string]*batchFile
	expires  time.Time
}

// sessionStore keeps upload batches in memory until they are analyzed or
// expire. Expired entries are reaped lazily on access.
type sessionStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	batches map[string]*batch
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:     ttl,
		batches: make(map[string]*batch),
	}
}

// Create registers a new batch and returns it with a fresh UUID.
func (s *sessionStore) Create(layoutID string) *batch {
	b := &batch{
		ID:       uuid.New().String(),
		LayoutID: layoutID,
		Files:    make(map[string]*batchFile),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	b.expires = time.Now().Add(s.ttl)
	s.batches[b.ID] = b
	return b
}

// Get returns the batch with the given ID, or nil when it does not exist
// or has already expired.
func (s *sessionStore) Get(id string) *batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	return s.batches[id]
}

// Delete drops the batch. Deleting an unknown ID is a no-op.
func (s *sessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, id)
}

// Len reports how many live batches the store holds.
func (s *sessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	return len(s.batches)
}

func (s *sessionStore) reapLocked() {
	now := time.Now()
	for id, b := range s.batches {
		if now.After(b.expires) {
			delete(s.batches, id)
		}
	}
}
