// internal/services/ids.go
package services

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// IDGenerator produces identifiers for new records. taken reports whether an
// identifier is already used in the target collection.
type IDGenerator interface {
	Next(size int, taken func(id string) bool) string
}

// lockedSource is a math/rand source safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedSource(seed int64) *lockedSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

// RandomDigits generates prefix + N random decimal digits ("INV-042").
// When every identifier of the current width is taken it widens by one digit.
type RandomDigits struct {
	Prefix string
	Digits int
	src    *lockedSource
}

func NewRandomDigits(prefix string, digits int, seed int64) *RandomDigits {
	return &RandomDigits{Prefix: prefix, Digits: digits, src: newLockedSource(seed)}
}

func (g *RandomDigits) Next(_ int, taken func(id string) bool) string {
	digits := g.Digits
	space := pow10(digits)

	for attempt := 1; ; attempt++ {
		id := fmt.Sprintf("%s%0*d", g.Prefix, digits, g.src.Intn(space))
		if !taken(id) {
			return id
		}
		if attempt%(space*2) == 0 {
			digits++
			space = pow10(digits)
		}
	}
}

// Sequence generates prefix + zero-padded (size+1) ("PRD006"), bumping the
// counter while the candidate is taken.
type Sequence struct {
	Prefix string
	Width  int
}

func (g Sequence) Next(size int, taken func(id string) bool) string {
	for n := size + 1; ; n++ {
		id := fmt.Sprintf("%s%0*d", g.Prefix, g.Width, n)
		if !taken(id) {
			return id
		}
	}
}

func pow10(n int) int {
	v := 1
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
