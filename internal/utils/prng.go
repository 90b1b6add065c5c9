// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"deep-dive-dash/internal/defs"
)

// PRNGService — обёртка над генератором случайных чисел, чтобы во всей игре
// можно было использовать предсказуемый (seeded) рандом.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange возвращает случайное целое в диапазоне [lo, hi] включительно.
// При hi < lo возвращает lo.
func (s *PRNGService) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Uniform возвращает случайное число в диапазоне [lo, hi).
func (s *PRNGService) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Sign возвращает -1 или 1 с равной вероятностью.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// ChooseCoin выполняет взвешенный выбор типа монеты.
// Суммирует веса, выбирает число в этом диапазоне и находит соответствующий элемент.
func (s *PRNGService) ChooseCoin(entries []defs.CoinDefinition) defs.CoinDefinition {
	if len(entries) == 0 {
		return defs.CoinDefinition{}
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0]
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1]
}
