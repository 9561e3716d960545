// Package prime issues the prime multipliers used by synthesized HashCode methods.
package prime

import (
	"math"
	"math/big"
	"sync"

	"github.com/syssam/membergen"
)

// Source issues hash multipliers.
type Source interface {
	// Next returns the multiplier for the next synthesized hash member.
	Next() (int32, error)
}

// Sequence issues strictly increasing primes, one per call. A Sequence lives for a
// single generation run and is safe for concurrent use.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

var _ Source = (*Sequence)(nil)

// Option configures a Sequence.
type Option func(*Sequence)

// WithSeed sets the value the first prime is searched from. The first call to
// Next returns the smallest prime strictly greater than seed.
func WithSeed(seed int64) Option {
	return func(s *Sequence) {
		s.last = seed
	}
}

// NewSequence returns a sequence seeded at zero, so the first prime is 2.
func NewSequence(opts ...Option) *Sequence {
	s := &Sequence{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the smallest prime strictly greater than the last one issued.
// A prime that does not fit below math.MaxInt32 is never issued; the sequence
// is left unchanged and an *membergen.ExhaustedError is returned.
func (s *Sequence) Next() (int32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := nextPrime(s.last)
	if next >= math.MaxInt32 {
		return 0, membergen.NewExhaustedError(s.last, next)
	}
	s.last = next
	return int32(next), nil
}

// Last returns the last prime issued, or the seed if none was.
func (s *Sequence) Last() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// nextPrime returns the smallest prime strictly greater than n.
func nextPrime(n int64) int64 {
	if n < 2 {
		return 2
	}
	c := new(big.Int).SetInt64(n + 1)
	if c.Bit(0) == 0 && c.Int64() != 2 {
		c.Add(c, big.NewInt(1))
	}
	two := big.NewInt(2)
	// ProbablyPrime is exact for values below 2^64.
	for !c.ProbablyPrime(0) {
		c.Add(c, two)
	}
	return c.Int64()
}

// Fixed returns a Source that always issues p. It is the conventional single
// multiplier mode (31) and is handy in tests.
func Fixed(p int32) Source { return fixed(p) }

type fixed int32

func (f fixed) Next() (int32, error) { return int32(f), nil }
