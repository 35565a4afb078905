package loader

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
)

// Column layout. Columns 4, 8, 13 and 16 are spacers.
const (
	colWeaponClass     = 0
	colWeaponName      = 1
	colWeaponDual      = 2
	colWeaponTwoHanded = 3

	colOffhandClass = 5
	colOffhandName  = 6
	colOffhandBonus = 7

	colSpellType   = 9
	colSpellSchool = 10
	colSpellName   = 11
	colSpellSlots  = 12

	colArmorName  = 14
	colArmorBonus = 15

	colSpiritName = 17
)

// headerRow is the index of the real header; data starts right after it
const headerRow = 1

const defaultSlotCost = 1

// extract splits the raw rows into the five relations
func extract(rows [][]string) *armory.Catalog {
	catalog := &armory.Catalog{
		Weapons:      []armory.Weapon{},
		OffhandItems: []armory.OffhandItem{},
		Spells:       []armory.Spell{},
		ArmorSets:    []armory.ArmorSet{},
		Spirits:      []armory.Spirit{},
	}
	if len(rows) <= headerRow {
		return catalog
	}

	data := rows[headerRow+1:]

	catalog.Weapons = extractWeapons(data)
	catalog.OffhandItems = extractOffhandItems(data)
	catalog.Spells = extractSpells(data)
	catalog.ArmorSets = extractArmorSets(data)
	if hasColumn(rows[headerRow:], colSpiritName) {
		catalog.Spirits = extractSpirits(data)
	}

	return catalog
}

func extractWeapons(data [][]string) []armory.Weapon {
	weapons := []armory.Weapon{}
	class := ""
	for _, row := range data {
		class = fill(class, cell(row, colWeaponClass))

		name := cell(row, colWeaponName)
		if name == "" {
			continue
		}
		weapons = append(weapons, armory.Weapon{
			Class:     class,
			Name:      name,
			Dual:      isYes(cell(row, colWeaponDual)),
			TwoHanded: isYes(cell(row, colWeaponTwoHanded)),
		})
	}
	return weapons
}

func extractOffhandItems(data [][]string) []armory.OffhandItem {
	items := []armory.OffhandItem{}
	class := ""
	for _, row := range data {
		class = fill(class, cell(row, colOffhandClass))

		name := cell(row, colOffhandName)
		if name == "" {
			continue
		}
		items = append(items, armory.OffhandItem{
			Class:         class,
			Name:          name,
			CatalystBonus: cell(row, colOffhandBonus),
		})
	}
	return items
}

func extractSpells(data [][]string) []armory.Spell {
	spells := []armory.Spell{}
	spellType, school := "", ""
	for _, row := range data {
		spellType = fill(spellType, cell(row, colSpellType))
		school = fill(school, cell(row, colSpellSchool))

		name := cell(row, colSpellName)
		if name == "" {
			continue
		}
		spells = append(spells, armory.Spell{
			Type:     armory.SpellType(spellType),
			School:   school,
			Name:     name,
			SlotCost: parseSlotCost(cell(row, colSpellSlots)),
		})
	}
	return spells
}

func extractArmorSets(data [][]string) []armory.ArmorSet {
	sets := []armory.ArmorSet{}
	for _, row := range data {
		name := cell(row, colArmorName)
		if name == "" {
			continue
		}
		sets = append(sets, armory.ArmorSet{
			Name:        name,
			BonusSchool: cell(row, colArmorBonus),
		})
	}
	return sets
}

func extractSpirits(data [][]string) []armory.Spirit {
	spirits := []armory.Spirit{}
	for _, row := range data {
		name := cell(row, colSpiritName)
		if name == "" {
			continue
		}
		spirits = append(spirits, armory.Spirit{Name: name})
	}
	return spirits
}

// cell returns the trimmed value at col, or "" past the end of a short row
func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// fill carries the previous non-blank value forward
func fill(previous, current string) string {
	if current == "" {
		return previous
	}
	return current
}

func isYes(value string) bool {
	return strings.EqualFold(value, "yes")
}

// hasColumn reports whether any row reaches col
func hasColumn(rows [][]string, col int) bool {
	for _, row := range rows {
		if len(row) > col {
			return true
		}
	}
	return false
}

// parseSlotCost accepts "2", "2.0" or "2,0"; anything unusable or below one is one
func parseSlotCost(value string) int {
	if value == "" {
		return defaultSlotCost
	}
	if strings.Contains(value, ",") && !strings.Contains(value, ".") {
		value = strings.ReplaceAll(value, ",", ".")
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultSlotCost
	}

	if f > math.MaxInt32 {
		f = math.MaxInt32
	}
	cost := int(f)
	if cost < 1 {
		return defaultSlotCost
	}
	return cost
}
