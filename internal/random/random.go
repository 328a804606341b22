// Package random содержит примитивы случайного выбора, используемые всеми
// шагами генерации. Примитивы не имеют состояния и не требуют сидирования:
// по умолчанию используется глобальный источник math/rand/v2.
package random

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidArgument - примитив вызван с пустым множеством или некорректным
// диапазоном. Всегда ошибка программиста в вызывающем коде, не восстанавливается.
var ErrInvalidArgument = errors.New("random: invalid argument")

// Source - источник случайности. Абстракция нужна только для подмены
// в тестах; боевой код всегда использует Default.
type Source interface {
	Float64() float64
	IntN(n int) int
}

type defaultSource struct{}

func (defaultSource) Float64() float64 { return rand.Float64() }
func (defaultSource) IntN(n int) int   { return rand.IntN(n) }

// Default - источник на базе глобального генератора math/rand/v2
var Default Source = defaultSource{}

// Choice возвращает равномерно случайный элемент непустой последовательности
func Choice[T any](src Source, set []T) (T, error) {
	var zero T
	if len(set) == 0 {
		return zero, fmt.Errorf("%w: choice from empty set", ErrInvalidArgument)
	}
	return set[src.IntN(len(set))], nil
}

// IntRange возвращает равномерно случайное целое в [min, max] включительно
func IntRange(src Source, min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: int range [%d, %d]", ErrInvalidArgument, min, max)
	}
	return min + src.IntN(max-min+1), nil
}

// Float возвращает равномерно случайное число с плавающей точкой в [min, max)
func Float(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// Chance возвращает true с вероятностью p (p в [0, 1])
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
