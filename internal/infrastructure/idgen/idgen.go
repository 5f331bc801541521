// Package idgen mints integer identities for the account directory and the
// appointment ledger.
package idgen

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/secourse/clinic-scheduler/internal/core/ports"
)

const (
	// DefaultRandomRange is the exclusive upper bound for random identities.
	DefaultRandomRange = 1_000_000
	maxRandomAttempts  = 64
)

var ErrExhausted = errors.New("identity space exhausted")

var (
	_ ports.IDGenerator = (*Sequence)(nil)
	_ ports.IDGenerator = (*RandomRetry)(nil)
)

// Sequence hands out 0, 1, 2, ... and never repeats a value, even after the
// record holding it has been removed.
type Sequence struct {
	mu   sync.Mutex
	next int
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next unissued value, skipping any that taken reports as
// held (possible only when records were loaded from elsewhere).
func (s *Sequence) Next(taken func(id int) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for taken != nil && taken(s.next) {
		s.next++
	}
	id := s.next
	s.next++
	return id, nil
}

// RandomRetry draws uniformly from [0, limit) and retries while the candidate
// is held by a live record. A removed record's id may be drawn again.
type RandomRetry struct {
	mu    sync.Mutex
	limit int
	rnd   *rand.Rand
}

// NewRandomRetry returns a generator over [0, limit). A nil src seeds from
// the runtime's random source.
func NewRandomRetry(limit int, src rand.Source) *RandomRetry {
	if limit <= 0 {
		limit = DefaultRandomRange
	}
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomRetry{limit: limit, rnd: rand.New(src)}
}

// Next falls back to a linear probe after maxRandomAttempts collisions so a
// nearly full range still terminates.
func (g *RandomRetry) Next(taken func(id int) bool) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if taken == nil {
		return g.rnd.IntN(g.limit), nil
	}
	for i := 0; i < maxRandomAttempts; i++ {
		if id := g.rnd.IntN(g.limit); !taken(id) {
			return id, nil
		}
	}
	start := g.rnd.IntN(g.limit)
	for i := 0; i < g.limit; i++ {
		if id := (start + i) % g.limit; !taken(id) {
			return id, nil
		}
	}
	return 0, ErrExhausted
}
