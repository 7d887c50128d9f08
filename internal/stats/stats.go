// Package stats is the view-counter side store. It mirrors animal
// popularity outside the relational database: a best-effort, derived
// counter keyed by animal id, never written in the same transaction as
// relational data.
package stats

import (
	"context"
	"time"
)

type AnimalStat struct {
	AnimalID   uint      `json:"animal_id"`
	AnimalName string    `json:"animal_name"`
	Views      int64     `json:"views"`
	LastViewed time.Time `json:"last_viewed"`
}

// Store is the contract every counter backend satisfies. IncrementView
// upserts: the first call for an animal creates its row with views=1,
// every later call increments and refreshes the name snapshot and
// last-viewed timestamp.
type Store interface {
	IncrementView(ctx context.Context, animalID uint, animalName string) error
	Top(ctx context.Context, n int) ([]AnimalStat, error)
	TotalViews(ctx context.Context) (int64, error)
}
