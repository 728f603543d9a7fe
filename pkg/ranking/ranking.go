// Package ranking keeps the five best total race times.
package ranking

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// Size is the number of times kept.
const Size = 5

// Store persists the ranking. Scores are total times in seconds.
type Store interface {
	Load() ([]float64, error)
	Save(scores []float64) error
}

// Insert adds score, sorts ascending (lower is better) and truncates to
// limit. The input slice is not modified.
func Insert(scores []float64, score float64, limit int) []float64 {
	out := make([]float64, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, score)
	sort.Float64s(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Board submits finished runs to a Store.
type Board struct {
	store Store
	log   zerolog.Logger
}

func NewBoard(store Store, log zerolog.Logger) *Board {
	return &Board{
		store: store,
		log:   log.With().Str("component", "ranking").Logger(),
	}
}

// Submit records score and returns the updated top list. Store failures are
// logged; the returned list is still valid.
func (b *Board) Submit(score float64) []float64 {
	scores, err := b.store.Load()
	if err != nil {
		b.log.Warn().Err(err).Msg("reading ranking, starting empty")
		scores = nil
	}
	scores = Insert(scores, score, Size)
	if err := b.store.Save(scores); err != nil {
		b.log.Error().Err(err).Msg("writing ranking")
	}
	b.log.Info().Float64("score", score).Floats64("ranking", scores).Msg("run submitted")
	return scores
}

// Best returns the stored top list, or nil when it cannot be read.
func (b *Board) Best() []float64 {
	scores, err := b.store.Load()
	if err != nil {
		b.log.Warn().Err(err).Msg("reading ranking")
		return nil
	}
	return scores
}

// Open returns the store for a backend name: "json" or "sqlite".
func Open(backend, path string, log zerolog.Logger) (Store, error) {
	switch backend {
	case "", "json":
		return &FileStore{Path: path}, nil
	case "sqlite":
		return OpenSQLite(path, log)
	}
	return nil, fmt.Errorf("unknown ranking backend %q", backend)
}
