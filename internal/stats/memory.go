package stats

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is the in-process fallback used by tests and by a server
// started without a reachable Redis. Counts are lost on restart, which
// is acceptable for a derived analytics counter.
type MemoryStore struct {
	mu    sync.Mutex
	stats map[uint]*AnimalStat
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{stats: make(map[uint]*AnimalStat)}
}

func (s *MemoryStore) IncrementView(_ context.Context, animalID uint, animalName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stat, ok := s.stats[animalID]
	if !ok {
		stat = &AnimalStat{AnimalID: animalID}
		s.stats[animalID] = stat
	}
	stat.AnimalName = animalName
	stat.Views++
	stat.LastViewed = time.Now()
	return nil
}

func (s *MemoryStore) Top(_ context.Context, n int) ([]AnimalStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]AnimalStat, 0, len(s.stats))
	for _, stat := range s.stats {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (s *MemoryStore) TotalViews(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, stat := range s.stats {
		total += stat.Views
	}
	return total, nil
}
