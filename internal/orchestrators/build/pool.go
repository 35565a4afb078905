package build

import "github.com/KirkDiggler/build-roller/internal/pkg/chance"

// weightedPool is a private copy of candidates with an integer weight per
// item. Take removes what it draws, Pick leaves the pool intact.
type weightedPool[T any] struct {
	items  []T
	weight func(T) int
}

func newWeightedPool[T any](items []T, weight func(T) int) *weightedPool[T] {
	return &weightedPool[T]{
		items:  append([]T(nil), items...),
		weight: weight,
	}
}

func (p *weightedPool[T]) Len() int {
	return len(p.items)
}

// Take draws one eligible item and removes it. ok is false when nothing is eligible.
func (p *weightedPool[T]) Take(d *chance.Drawer, eligible func(T) bool) (T, bool, error) {
	return p.draw(d, eligible, true)
}

// Pick draws one eligible item without removing it
func (p *weightedPool[T]) Pick(d *chance.Drawer, eligible func(T) bool) (T, bool, error) {
	return p.draw(d, eligible, false)
}

func (p *weightedPool[T]) draw(d *chance.Drawer, eligible func(T) bool, remove bool) (T, bool, error) {
	var zero T

	indexes := make([]int, 0, len(p.items))
	weights := make([]int, 0, len(p.items))
	for i, item := range p.items {
		if eligible != nil && !eligible(item) {
			continue
		}
		indexes = append(indexes, i)
		weights = append(weights, p.weight(item))
	}
	if len(indexes) == 0 {
		return zero, false, nil
	}

	pick, err := d.Weighted(weights)
	if err != nil {
		return zero, false, err
	}

	idx := indexes[pick]
	item := p.items[idx]
	if remove {
		p.items = append(p.items[:idx], p.items[idx+1:]...)
	}
	return item, true, nil
}
