package build

import "github.com/KirkDiggler/build-roller/internal/entities/armory"

const (
	bonusSchoolSpellWeight = 3
	baseSpellWeight        = 1
)

// castingTypes returns the spell types this build may memorize
func (r *roll) castingTypes() map[armory.SpellType]bool {
	blocked := r.build.Grip == armory.GripDualWield ||
		(r.build.Grip == armory.GripTwoHanded && !r.specialHybrid) ||
		(r.isShield && !r.specialHybrid)
	if blocked {
		return nil
	}

	enabled := make(map[armory.SpellType]bool)
	if r.build.Grip == armory.GripOneHanded && r.offhandItem != nil {
		for _, t := range r.offhandItem.CastingTypes() {
			enabled[t] = true
		}
	}
	if r.specialHybrid {
		enabled[armory.SpellTypeSorceries] = true
	}
	return enabled
}

// selectSpells fills the slot budget with weighted draws without replacement
func (r *roll) selectSpells() error {
	enabled := r.castingTypes()
	if len(enabled) == 0 {
		return nil
	}

	bonus := ""
	if r.offhandItem != nil {
		bonus = r.offhandItem.CatalystBonus
	}

	var candidates []armory.Spell
	for _, s := range r.catalog.Spells {
		if enabled[s.Type] {
			candidates = append(candidates, s)
		}
	}

	pool := newWeightedPool(candidates, func(s armory.Spell) int {
		if bonus != "" && s.School == bonus {
			return bonusSchoolSpellWeight
		}
		return baseSpellWeight
	})

	budget := armory.SpellSlotBudget
	for budget > 0 && pool.Len() > 0 {
		spell, ok, err := pool.Take(r.drawer, func(s armory.Spell) bool {
			return s.SlotCost <= budget
		})
		if err != nil {
			return err
		}
		if !ok {
			break
		}

		r.build.Spells = append(r.build.Spells, spell.Label())
		r.recordSchool(spell.School)
		budget -= spell.SlotCost
		r.build.SlotsUsed += spell.SlotCost
	}

	return nil
}
