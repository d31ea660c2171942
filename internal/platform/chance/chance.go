// Package chance aísla la aleatoriedad de los pools de muestras para poder
// fijarla en tests.
package chance

import (
	"math/rand/v2"
	"sync"
)

type Source interface {
	// IntN devuelve un entero en [0, n). n > 0.
	IntN(n int) int
}

// Default usa el generador global de math/rand/v2.
var Default Source = global{}

type global struct{}

func (global) IntN(n int) int { return rand.IntN(n) }

// Seeded es determinístico y seguro para uso concurrente.
type Seeded struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Seeded) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// Fixed devuelve siempre los mismos índices, en orden y luego el último.
// Pensado para tests que necesitan una secuencia exacta.
type Fixed struct {
	mu   sync.Mutex
	seq  []int
	next int
}

func NewFixed(seq ...int) *Fixed {
	return &Fixed{seq: seq}
}

func (f *Fixed) IntN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.seq) == 0 {
		return 0
	}
	i := f.next
	if i >= len(f.seq) {
		i = len(f.seq) - 1
	} else {
		f.next++
	}
	return f.seq[i]
}

// Pick elige un elemento de items. ok=false si items está vacío o el
// source devuelve un índice fuera de rango.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	if src == nil {
		src = Default
	}
	i := src.IntN(len(items))
	if i < 0 || i >= len(items) {
		return zero, false
	}
	return items[i], true
}

// Coin devuelve true con probabilidad 1/2.
func Coin(src Source) bool {
	if src == nil {
		src = Default
	}
	return src.IntN(2) == 1
}
