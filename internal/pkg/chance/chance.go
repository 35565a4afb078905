// Package chance turns an rpg-toolkit dice roller into the uniform, fractional
// and weighted draws used when rolling a build.
package chance

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/build-roller/internal/errors"
)

// Drawer makes every random decision through a single dice.Roller
type Drawer struct {
	roller dice.Roller
}

// New creates a Drawer backed by roller
func New(roller dice.Roller) (*Drawer, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}
	return &Drawer{roller: roller}, nil
}

// roll returns a face in [1, size]
func (d *Drawer) roll(size int) (int, error) {
	face, err := d.roller.Roll(size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d%d", size)
	}
	if face < 1 || face > size {
		return 0, errors.Internalf("roller returned %d for d%d", face, size)
	}
	return face, nil
}

// Index picks a uniform index in [0, n)
func (d *Drawer) Index(n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgumentf("cannot pick from %d items", n)
	}
	face, err := d.roll(n)
	if err != nil {
		return 0, err
	}
	return face - 1, nil
}

// Chance succeeds with probability num/den
func (d *Drawer) Chance(num, den int) (bool, error) {
	if den <= 0 || num < 0 || num > den {
		return false, errors.InvalidArgumentf("invalid chance %d/%d", num, den)
	}
	if num == 0 {
		return false, nil
	}
	if num == den {
		return true, nil
	}
	face, err := d.roll(den)
	if err != nil {
		return false, err
	}
	return face <= num, nil
}

// Weighted picks index i with probability weights[i]/sum(weights).
// Zero weights are never picked; negative weights are rejected.
func (d *Drawer) Weighted(weights []int) (int, error) {
	total := 0
	for i, w := range weights {
		if w < 0 {
			return 0, errors.InvalidArgumentf("weight %d at index %d is negative", w, i)
		}
		total += w
	}
	if total == 0 {
		return 0, errors.InvalidArgument("cannot draw from an empty or zero weight pool")
	}

	face, err := d.roll(total)
	if err != nil {
		return 0, err
	}

	for i, w := range weights {
		if face <= w {
			return i, nil
		}
		face -= w
	}

	// unreachable while face <= total
	return len(weights) - 1, nil
}
