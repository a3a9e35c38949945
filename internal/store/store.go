package store

import (
	"errors"
	"sync"

	"github.com/alexisjeriha/mission-config-contract-tests/internal/models"
)

// ErrStoreFull is returned by Insert when the store already holds the
// configured maximum number of records.
var ErrStoreFull = errors.New("mission config database is full")

// Store is the authoritative in-memory collection of mission configs for one
// service instance. Mutations are mutually exclusive; reads observe a
// consistent snapshot and never see a partially applied write.
type Store struct {
	capacity int
	records  map[int]models.MissionConfig
	order    []int
	nextID   int
	lock     sync.RWMutex
}

// New creates an empty store that admits at most capacity records.
func New(capacity int) *Store {
	return &Store{
		capacity: capacity,
		records:  make(map[int]models.MissionConfig),
		nextID:   1,
	}
}

func (s *Store) Capacity() int {
	return s.capacity
}

// List returns all records in creation order. The result is always non-nil
// so an empty store serializes as an empty array.
func (s *Store) List() []models.MissionConfig {
	s.lock.RLock()
	defer s.lock.RUnlock()
	out := make([]models.MissionConfig, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

func (s *Store) Get(id int) (models.MissionConfig, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	record, ok := s.records[id]
	return record, ok
}

func (s *Store) Count() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.records)
}

// Insert admits a new record and assigns the next id. Ids are strictly
// increasing and are never reused, even after deletes.
func (s *Store) Insert(payload models.MissionPayload) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if len(s.records) >= s.capacity {
		return 0, ErrStoreFull
	}
	id := s.nextID
	s.nextID++
	s.records[id] = models.MissionConfig{
		ID:       id,
		Name:     payload.Name,
		Type:     payload.Type,
		CosparID: payload.CosparID,
	}
	s.order = append(s.order, id)
	return id, nil
}

// Replace overwrites the mutable fields of an existing record, preserving
// its id and position in creation order. Returns false if no record has the
// given id.
func (s *Store) Replace(id int, payload models.MissionPayload) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	s.records[id] = models.MissionConfig{
		ID:       id,
		Name:     payload.Name,
		Type:     payload.Type,
		CosparID: payload.CosparID,
	}
	return true
}

// Delete removes a record. Returns false if no record has the given id.
func (s *Store) Delete(id int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.records[id]; !ok {
		return false
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Reset empties the store and restarts id assignment at 1, beginning a new
// logical service lifetime.
func (s *Store) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.records = make(map[int]models.MissionConfig)
	s.order = nil
	s.nextID = 1
}
