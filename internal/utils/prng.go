// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел, общая для раскладки,
// обломков и брызг.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a number in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// IntRange returns an integer in [lo, hi], both ends included.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Angle returns a direction in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * 2 * math.Pi
}
