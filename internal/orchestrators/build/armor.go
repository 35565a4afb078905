package build

import "github.com/KirkDiggler/build-roller/internal/entities/armory"

const (
	affinityArmorWeight = 5
	baseArmorWeight     = 1
)

func (r *roll) selectArmor() error {
	pool := newWeightedPool(r.catalog.ArmorSets, func(a armory.ArmorSet) int {
		if a.BonusSchool != "" && r.schoolSet[a.BonusSchool] {
			return affinityArmorWeight
		}
		return baseArmorWeight
	})

	set, ok, err := pool.Pick(r.drawer, nil)
	if err != nil {
		return err
	}
	if ok {
		r.build.Armor = set.Label()
	}
	return nil
}

func (r *roll) selectSpirit() error {
	r.build.Spirit = armory.SpiritNone
	if len(r.catalog.Spirits) == 0 {
		return nil
	}

	ok, err := r.drawer.Chance(1, 2)
	if err != nil || !ok {
		return err
	}

	i, err := r.drawer.Index(len(r.catalog.Spirits))
	if err != nil {
		return err
	}
	r.build.Spirit = r.catalog.Spirits[i].Name
	return nil
}
