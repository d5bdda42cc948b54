// internal/utils/prng.go
package utils

import (
	"go-cartoon-survivor/internal/defs"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange возвращает случайное целое число в диапазоне [min, max] включительно.
func (s *PRNGService) IntRange(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// UniformRange возвращает случайное вещественное число в диапазоне [min, max).
func (s *PRNGService) UniformRange(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Shuffle перемешивает n элементов, используя переданную функцию обмена.
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// ChooseWeighted выполняет взвешенный случайный выбор вида моба из таблицы спавна.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnWeight) defs.MobKind {
	if len(entries) == 0 {
		return defs.MobMelee
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		// Если сумма весов некорректна, возвращаем первый элемент по умолчанию
		return entries[0].Kind
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Kind
		}
		upto += entry.Weight
	}

	// Этот код не должен быть достижим, но на всякий случай
	return entries[len(entries)-1].Kind
}
