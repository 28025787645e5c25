package services

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/kerbaras/authorquiz/pkg/config"
	"github.com/kerbaras/authorquiz/pkg/data"
	"github.com/kerbaras/authorquiz/pkg/quiz"
	"github.com/kerbaras/authorquiz/pkg/sources"
)

// OpenStore creates the store selected by cfg and seeds it from src.
func OpenStore(cfg *config.Config, src sources.Source) (data.Store, error) {
	authors, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}

	switch cfg.Store {
	case config.StoreMemory, "":
		return data.NewDataset(authors...), nil

	case config.StoreDuckDB:
		store, err := data.NewDuckDBStore(cfg.DuckDBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open duckdb: %w", err)
		}
		for _, author := range authors {
			if err := store.AddAuthor(author); err != nil {
				store.Close()
				return nil, fmt.Errorf("failed to seed duckdb: %w", err)
			}
		}
		return store, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, cfg.Store)
	}
}

// NewRand returns a seeded random source; seed 0 picks one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// GenerateRounds produces n independent rounds from the store.
func GenerateRounds(store data.Store, rng quiz.Rand, n int) ([]quiz.TurnData, error) {
	authors, err := store.Authors()
	if err != nil {
		return nil, fmt.Errorf("failed to load authors: %w", err)
	}

	rounds := make([]quiz.TurnData, 0, n)
	for i := 0; i < n; i++ {
		turn, err := quiz.GenerateTurn(authors, rng)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		rounds = append(rounds, turn)
	}
	return rounds, nil
}
