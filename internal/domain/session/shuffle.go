package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/phrazzld/vocab-drill/internal/domain"
)

// Source is the uniform random source consumed by Shuffle.
// IntN returns a value in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// lockedSource serializes access to a *rand.Rand, which is not safe for
// concurrent use. The HTTP server shuffles decks for many browser sessions
// through one controller.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// NewSource returns a goroutine-safe PCG source. A zero seed seeds from the
// clock, any other value gives a reproducible sequence of shuffles.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{
		rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Shuffle returns a uniformly random permutation of cards using the modern
// Fisher-Yates algorithm: for i from len-1 down to 1, pick j uniformly in
// [0, i] and swap positions i and j. It draws exactly one value per swap and
// works on a copy, so the input slice is left untouched.
func Shuffle(cards []domain.Card, src Source) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)

	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}
