package memory

import (
	"context"
	"math"
	"sync"

	"festabot/internal/domain"
)

// Store is an in-memory vector store using brute-force cosine similarity.
// It mirrors the Qdrant semantics closely enough for tests and offline
// runs: upsert overwrites by id, search supports a payload equality
// filter, and operating on a missing collection fails with ErrNotFound.
type Store struct {
	mu        sync.RWMutex
	created   bool
	dimension int
	points    map[string]domain.Point
}

func NewStore() *Store { return &Store{} }

func (s *Store) CreateCollection(_ context.Context, dimension int) error {
	if dimension <= 0 {
		return domain.ErrDimensionMismatch
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.created && s.dimension != dimension {
		return domain.ErrDimensionMismatch
	}
	if !s.created {
		s.created = true
		s.dimension = dimension
		s.points = make(map[string]domain.Point)
	}
	return nil
}

func (s *Store) DeleteCollection(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.created = false
	s.dimension = 0
	s.points = nil
	return nil
}

func (s *Store) Info(context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.created {
		return 0, 0, domain.ErrNotFound
	}
	return s.dimension, len(s.points), nil
}

func (s *Store) Upsert(_ context.Context, points []domain.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.created {
		return domain.ErrNotFound
	}
	for _, p := range points {
		if len(p.Vector) != s.dimension {
			return domain.ErrDimensionMismatch
		}
		s.points[p.ID] = p
	}
	return nil
}

func (s *Store) Search(_ context.Context, vector []float64, k int, filter *domain.Filter) ([]domain.Hit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.created {
		return nil, domain.ErrNotFound
	}
	if k <= 0 {
		k = 5
	}
	hits := make([]domain.Hit, 0, len(s.points))
	for _, p := range s.points {
		if !matches(p.Entry, filter) {
			continue
		}
		entry := p.Entry
		entry.ID = p.ID
		hits = append(hits, domain.Hit{Entry: entry, Score: cosine(p.Vector, vector)})
	}
	sortHitsDesc(hits)
	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

func (s *Store) Scroll(_ context.Context, filter *domain.Filter, limit int) ([]domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.created {
		return nil, domain.ErrNotFound
	}
	if limit <= 0 {
		limit = 100
	}
	entries := make([]domain.Entry, 0, limit)
	for _, p := range s.points {
		if !matches(p.Entry, filter) {
			continue
		}
		entry := p.Entry
		entry.ID = p.ID
		entries = append(entries, entry)
		if len(entries) == limit {
			break
		}
	}
	return entries, nil
}

func matches(e domain.Entry, filter *domain.Filter) bool {
	if filter == nil {
		return true
	}
	switch filter.Field {
	case "topic":
		return e.Topic == filter.Value
	case "user":
		return e.User == filter.Value
	case "question":
		return e.Question == filter.Value
	default:
		return false
	}
}

func cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func sortHitsDesc(hits []domain.Hit) {
	// insertion sort: result sets here are small
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].Score > hits[j-1].Score; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
}
