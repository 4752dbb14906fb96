// Package store implements the engine's game/board lookups and the
// winning-board ledger on gorm.
package store

import (
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

const (
	drawnGameTTL     = 5 * time.Minute
	cacheSweepPeriod = 10 * time.Minute
)

// Store satisfies engine.GameRegistry, engine.BoardStore and engine.Ledger.
// Drawn games are immutable, so their lookups go through a small in-process
// cache; undrawn games are always read fresh.
type Store struct {
	db    *gorm.DB
	drawn *cache.Cache
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		drawn: cache.New(drawnGameTTL, cacheSweepPeriod),
	}
}
