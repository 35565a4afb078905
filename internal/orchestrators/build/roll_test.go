package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/pkg/chance"
	"github.com/KirkDiggler/build-roller/internal/testutils"
)

func TestCastingTypes(t *testing.T) {
	staff := armory.OffhandItem{Class: armory.ClassGlintstoneStaves, Name: "Meteorite Staff"}
	seal := armory.OffhandItem{Class: armory.ClassSacredSeals, Name: "Finger Seal"}
	universal := armory.OffhandItem{Class: armory.ClassUniversalCatalyst, Name: "Clawmark Seal"}
	shield := armory.OffhandItem{Class: "Greatshields", Name: "Brass Shield"}

	testCases := []struct {
		name     string
		grip     armory.GripMode
		item     *armory.OffhandItem
		special  bool
		expected []armory.SpellType
	}{
		{name: "staff", grip: armory.GripOneHanded, item: &staff, expected: []armory.SpellType{armory.SpellTypeSorceries}},
		{name: "seal", grip: armory.GripOneHanded, item: &seal, expected: []armory.SpellType{armory.SpellTypeIncantations}},
		{
			name:     "universal catalyst",
			grip:     armory.GripOneHanded,
			item:     &universal,
			expected: []armory.SpellType{armory.SpellTypeSorceries, armory.SpellTypeIncantations},
		},
		{name: "shield", grip: armory.GripOneHanded, item: &shield},
		{name: "secondary weapon", grip: armory.GripOneHanded},
		{name: "two handed", grip: armory.GripTwoHanded},
		{name: "dual wield", grip: armory.GripDualWield},
		{
			name:     "special hybrid two handed",
			grip:     armory.GripTwoHanded,
			special:  true,
			expected: []armory.SpellType{armory.SpellTypeSorceries},
		},
		{
			name:     "special hybrid with shield",
			grip:     armory.GripOneHanded,
			item:     &shield,
			special:  true,
			expected: []armory.SpellType{armory.SpellTypeSorceries},
		},
		{
			name:     "special hybrid with seal",
			grip:     armory.GripOneHanded,
			item:     &seal,
			special:  true,
			expected: []armory.SpellType{armory.SpellTypeSorceries, armory.SpellTypeIncantations},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRoll(nil, testutils.CreateTestCatalog())
			r.build.Grip = tc.grip
			r.offhandItem = tc.item
			r.isShield = tc.item != nil && tc.item.IsShield()
			r.specialHybrid = tc.special

			enabled := r.castingTypes()
			assert.Len(t, enabled, len(tc.expected))
			for _, st := range tc.expected {
				assert.True(t, enabled[st], "expected %s enabled", st)
			}
		})
	}
}

func TestWeightedPool_TakeRemoves(t *testing.T) {
	drawer, err := chance.New(testutils.NewScriptedRoller(2, 1))
	require.NoError(t, err)

	source := []string{"a", "b", "c"}
	pool := newWeightedPool(source, func(string) int { return 1 })

	item, ok, err := pool.Take(drawer, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", item)
	assert.Equal(t, 2, pool.Len())

	// only "c" is eligible, so a d1 picks it
	item, ok, err = pool.Take(drawer, func(s string) bool { return s == "c" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "c", item)

	assert.Equal(t, []string{"a", "b", "c"}, source, "source slice must be untouched")
}

func TestWeightedPool_NothingEligible(t *testing.T) {
	drawer, err := chance.New(testutils.NewScriptedRoller())
	require.NoError(t, err)

	pool := newWeightedPool([]int{5, 7}, func(int) int { return 1 })
	_, ok, err := pool.Pick(drawer, func(n int) bool { return n > 10 })
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, pool.Len())
}

func TestSelectArmor_AffinityWeighting(t *testing.T) {
	drawer, err := chance.New(chance.NewSeededRoller(99))
	require.NoError(t, err)

	catalog := &armory.Catalog{
		ArmorSets: []armory.ArmorSet{
			{Name: "Lusat's Set", BonusSchool: "Glintstone"},
			{Name: "Knight Set"},
		},
	}

	const trials = 60000
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		r := newRoll(drawer, catalog)
		r.recordSchool("Glintstone")
		require.NoError(t, r.selectArmor())
		counts[r.build.Armor]++
	}

	ratio := float64(counts["Lusat's Set (Bonus: Glintstone)"]) / float64(counts["Knight Set"])
	assert.InDelta(t, 5.0, ratio, 0.4)
}

func TestSelectSpirit_EmptyRelationDoesNotRoll(t *testing.T) {
	roller := testutils.NewScriptedRoller()
	drawer, err := chance.New(roller)
	require.NoError(t, err)

	r := newRoll(drawer, testutils.CreateMinimalCatalog())
	require.NoError(t, r.selectSpirit())
	assert.Equal(t, armory.SpiritNone, r.build.Spirit)
	assert.Empty(t, roller.Sizes)
}
