package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSlotCost(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"1", 1},
		{"3", 3},
		{"2.0", 2},
		{"2,0", 2},
		{"2.7", 2},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-4", 1},
		{"NaN", 1},
		{"1e12", 2147483647},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseSlotCost(tc.value))
		})
	}
}

func TestForwardFill(t *testing.T) {
	rows := [][]string{
		{"decor"},
		{"header"},
		{"Axes", "Battle Axe"},
		{"", "Highland Axe"},
		{"  ", ""},
		{"", "Iron Cleaver"},
		{"Daggers", "Misericorde"},
	}

	catalog := extract(rows)
	names := map[string]string{}
	for _, w := range catalog.Weapons {
		names[w.Name] = w.Class
	}

	assert.Len(t, catalog.Weapons, 4)
	assert.Equal(t, "Axes", names["Battle Axe"])
	assert.Equal(t, "Axes", names["Highland Axe"])
	assert.Equal(t, "Axes", names["Iron Cleaver"])
	assert.Equal(t, "Daggers", names["Misericorde"])
}

func TestForwardFillSpellTypeAndSchoolIndependently(t *testing.T) {
	row := func(spellType, school, name string) []string {
		r := make([]string, 13)
		r[colSpellType] = spellType
		r[colSpellSchool] = school
		r[colSpellName] = name
		r[colSpellSlots] = "1"
		return r
	}

	catalog := extract([][]string{
		{"decor"},
		{"header"},
		row("Sorceries", "Glintstone", "Glintstone Pebble"),
		row("", "Carian", "Carian Slicer"),
		row("Incantations", "", "Heal"),
	})

	assert.Equal(t, "Sorceries", string(catalog.Spells[1].Type))
	assert.Equal(t, "Carian", catalog.Spells[1].School)
	assert.Equal(t, "Incantations", string(catalog.Spells[2].Type))
	assert.Equal(t, "Carian", catalog.Spells[2].School)
}

func TestNameFieldsAreNotFilled(t *testing.T) {
	catalog := extract([][]string{
		{"decor"},
		{"header"},
		{"Axes", "Battle Axe", "", "", "", "Torches", "Torch"},
		{"", "", "", "", "", "", ""},
	})

	assert.Len(t, catalog.Weapons, 1)
	assert.Len(t, catalog.OffhandItems, 1)
}

func TestExtractTooFewRows(t *testing.T) {
	catalog := extract([][]string{{"decor"}})
	assert.NotNil(t, catalog.Weapons)
	assert.Empty(t, catalog.Weapons)
	assert.Empty(t, catalog.Spirits)
}

func TestIsYes(t *testing.T) {
	assert.True(t, isYes("Yes"))
	assert.True(t, isYes("YES"))
	assert.True(t, isYes("yes"))
	assert.False(t, isYes("No"))
	assert.False(t, isYes(""))
	assert.False(t, isYes("y"))
}
