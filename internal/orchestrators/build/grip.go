package build

import "github.com/KirkDiggler/build-roller/internal/entities/armory"

// resolveGrip decides how the main hand is held and fills the off hand
func (r *roll) resolveGrip() error {
	switch {
	case r.mainHand.Dual:
		r.build.Grip = armory.GripDualWield
		r.build.OffHand = armory.OffHandDualWield
		return nil
	case r.mainHand.TwoHanded:
		ok, err := r.drawer.Chance(2, 3)
		if err != nil {
			return err
		}
		if ok {
			r.build.Grip = armory.GripTwoHanded
			r.build.OffHand = armory.OffHandNone
			return nil
		}
	}

	r.build.Grip = armory.GripOneHanded
	return r.pickOffHand()
}

func (r *roll) pickOffHand() error {
	secondaries := r.secondaryWeapons()
	if len(secondaries) > 0 {
		ok, err := r.drawer.Chance(1, 2)
		if err != nil {
			return err
		}
		if ok {
			i, err := r.drawer.Index(len(secondaries))
			if err != nil {
				return err
			}
			r.build.OffHand = secondaries[i].Name
			return nil
		}
	}

	if len(r.catalog.OffhandItems) == 0 {
		r.build.OffHand = armory.OffHandNone
		return nil
	}

	i, err := r.drawer.Index(len(r.catalog.OffhandItems))
	if err != nil {
		return err
	}

	item := r.catalog.OffhandItems[i]
	r.offhandItem = &item
	r.isShield = item.IsShield()
	r.build.OffHand = item.Name
	return nil
}

// secondaryWeapons lists weapons of the main hand's class that can be
// paired with it, excluding the main hand itself and dual-only weapons
func (r *roll) secondaryWeapons() []armory.Weapon {
	var out []armory.Weapon
	for _, w := range r.catalog.Weapons {
		if w.Class != r.mainHand.Class || w.Dual || w.Name == r.mainHand.Name {
			continue
		}
		out = append(out, w)
	}
	return out
}
