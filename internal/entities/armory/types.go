// Package armory holds the equipment, spell and build types shared by the
// loader, the catalog cache and the build generator.
package armory

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/build-roller/internal/errors"
)

// Weapon is a main hand candidate
type Weapon struct {
	Class     string `json:"class"`
	Name      string `json:"name"`
	Dual      bool   `json:"dual"`
	TwoHanded bool   `json:"two_handed"`
}

// OffhandItem is a shield, catalyst or other left hand item
type OffhandItem struct {
	Class string `json:"class"`
	Name  string `json:"name"`
	// CatalystBonus is the school the item boosts, empty when none
	CatalystBonus string `json:"catalyst_bonus,omitempty"`
}

// IsShield reports whether the item's class marks it as a shield
func (o OffhandItem) IsShield() bool {
	return strings.Contains(o.Class, ShieldClassMarker)
}

// CastingTypes returns the spell types the item can cast
func (o OffhandItem) CastingTypes() []SpellType {
	switch o.Class {
	case ClassGlintstoneStaves:
		return []SpellType{SpellTypeSorceries}
	case ClassSacredSeals:
		return []SpellType{SpellTypeIncantations}
	case ClassUniversalCatalist, ClassUniversalCatalyst:
		return []SpellType{SpellTypeSorceries, SpellTypeIncantations}
	default:
		return nil
	}
}

// Spell is a sorcery or incantation with its memory slot cost
type Spell struct {
	Type     SpellType `json:"type"`
	School   string    `json:"school,omitempty"`
	Name     string    `json:"name"`
	SlotCost int       `json:"slot_cost"`
}

// Label renders the spell as "name (cost)"
func (s Spell) Label() string {
	return fmt.Sprintf("%s (%d)", s.Name, s.SlotCost)
}

// ArmorSet is a full armor set, optionally tied to a school
type ArmorSet struct {
	Name        string `json:"name"`
	BonusSchool string `json:"bonus_school,omitempty"`
}

// Label renders the set name with its bonus annotation
func (a ArmorSet) Label() string {
	if a.BonusSchool == "" {
		return a.Name
	}
	return fmt.Sprintf("%s (Bonus: %s)", a.Name, a.BonusSchool)
}

// Spirit is a summonable companion
type Spirit struct {
	Name string `json:"name"`
}

// Catalog bundles the five relations read from one source.
// It is built once and must be treated as read-only by everyone holding it.
type Catalog struct {
	Source       string        `json:"source"`
	Weapons      []Weapon      `json:"weapons"`
	OffhandItems []OffhandItem `json:"offhand_items"`
	Spells       []Spell       `json:"spells"`
	ArmorSets    []ArmorSet    `json:"armor_sets"`
	Spirits      []Spirit      `json:"spirits"`
}

// Validate checks the relations a build cannot be generated without
func (c *Catalog) Validate() error {
	if c == nil {
		return errors.InvalidArgument("catalog is required")
	}
	if len(c.Weapons) == 0 {
		return errors.FailedPreconditionf("catalog %q has no weapons", c.Source).
			WithMeta("relation", "weapons")
	}
	if len(c.ArmorSets) == 0 {
		return errors.FailedPreconditionf("catalog %q has no armor sets", c.Source).
			WithMeta("relation", "armor_sets")
	}
	return nil
}
