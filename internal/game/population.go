package game

import "math/rand"

// Population is a fixed set of column slots. A nil slot is empty; emptiness
// is an ordinary state that Each and Free walk over explicitly.
type Population[T any] struct {
	slots []*T
}

// NewPopulation creates a population with one slot per column.
func NewPopulation[T any](columns int) *Population[T] {
	return &Population[T]{slots: make([]*T, columns)}
}

// Columns returns the slot count.
func (p *Population[T]) Columns() int { return len(p.slots) }

// At returns the entity in a column, or nil when the slot is empty or the
// column is out of range.
func (p *Population[T]) At(column int) *T {
	if column < 0 || column >= len(p.slots) {
		return nil
	}
	return p.slots[column]
}

// Set fills a slot. Setting nil empties it.
func (p *Population[T]) Set(column int, v *T) {
	p.slots[column] = v
}

// Remove empties a slot.
func (p *Population[T]) Remove(column int) {
	p.slots[column] = nil
}

// Occupied counts the live entities.
func (p *Population[T]) Occupied() int {
	n := 0
	for _, s := range p.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Free lists the empty columns in ascending order.
func (p *Population[T]) Free() []int {
	var out []int
	for i, s := range p.slots {
		if s == nil {
			out = append(out, i)
		}
	}
	return out
}

// Each calls fn for every live entity in column order. fn may remove the
// entity it is handed.
func (p *Population[T]) Each(fn func(column int, v *T)) {
	for i, s := range p.slots {
		if s != nil {
			fn(i, s)
		}
	}
}

// RemoveIf empties every slot whose entity matches and returns how many
// were removed.
func (p *Population[T]) RemoveIf(match func(v *T) bool) int {
	n := 0
	for i, s := range p.slots {
		if s != nil && match(s) {
			p.slots[i] = nil
			n++
		}
	}
	return n
}

// Clear empties every slot.
func (p *Population[T]) Clear() {
	for i := range p.slots {
		p.slots[i] = nil
	}
}

// PlaceInFreeSlot puts a newly spawned entity in a uniformly random free
// column. It returns the column, or false when every slot is taken; a
// validated Rules never lets that happen.
func PlaceInFreeSlot[T any](p *Population[T], rng *rand.Rand, spawn func(column int) *T) (int, bool) {
	free := p.Free()
	if len(free) == 0 {
		return -1, false
	}
	column := free[rng.Intn(len(free))]
	p.slots[column] = spawn(column)
	return column, true
}

// EnsurePopulation spawns entities until max slots are occupied and returns
// the columns it filled, in spawn order.
func EnsurePopulation[T any](p *Population[T], max int, rng *rand.Rand, spawn func(column int) *T) []int {
	var placed []int
	for p.Occupied() < max {
		column, ok := PlaceInFreeSlot(p, rng, spawn)
		if !ok {
			break
		}
		placed = append(placed, column)
	}
	return placed
}
