package testutils

import (
	"github.com/KirkDiggler/build-roller/internal/entities/armory"
)

// Fixture names referenced by tests
const (
	TestCatalogSource = "testdata/catalog.csv"

	WeaponBroadsword = "Broadsword"
	WeaponLongsword  = "Longsword"
	WeaponTwinblade  = "Twinblade"
	WeaponGreatsword = "Greatsword"

	ItemMeteoriteStaff = "Meteorite Staff"
	ItemFingerSeal     = "Finger Seal"
	ItemHeaterShield   = "Heater Shield"
	ItemClawmarkSeal   = "Clawmark Seal"
	ItemTorch          = "Torch"
)

// CreateTestCatalog returns a small catalog covering every grip and
// casting rule. Order matters: scripted rolls index into these slices.
//
//	Weapons:      Broadsword, Longsword, Twinblade, Greatsword, Carian Sorcery Sword
//	OffhandItems: Meteorite Staff, Finger Seal, Heater Shield, Clawmark Seal, Torch
//	Spells:       Glintstone Pebble 1, Comet Azur 3, Rock Sling 2,
//	              Lightning Spear 2, Golden Vow 5, Beast Claw 2
//	ArmorSets:    Lusat's Set, Knight Set, Beast Champion Set
//	Spirits:      Mimic Tear, Black Knife Tiche
func CreateTestCatalog() *armory.Catalog {
	return &armory.Catalog{
		Source: TestCatalogSource,
		Weapons: []armory.Weapon{
			{Class: "Straight Swords", Name: WeaponBroadsword},
			{Class: "Straight Swords", Name: WeaponLongsword},
			{Class: "Twinblades", Name: WeaponTwinblade, Dual: true},
			{Class: "Colossal Swords", Name: WeaponGreatsword, TwoHanded: true},
			{Class: "Glintblades", Name: armory.WeaponCarianSorcerySword, TwoHanded: true},
		},
		OffhandItems: []armory.OffhandItem{
			{Class: armory.ClassGlintstoneStaves, Name: ItemMeteoriteStaff, CatalystBonus: "Gravity"},
			{Class: armory.ClassSacredSeals, Name: ItemFingerSeal},
			{Class: "Medium Shields", Name: ItemHeaterShield},
			{Class: armory.ClassUniversalCatalist, Name: ItemClawmarkSeal, CatalystBonus: "Bestial"},
			{Class: "Torches", Name: ItemTorch},
		},
		Spells: []armory.Spell{
			{Type: armory.SpellTypeSorceries, School: "Glintstone", Name: "Glintstone Pebble", SlotCost: 1},
			{Type: armory.SpellTypeSorceries, School: "Glintstone", Name: "Comet Azur", SlotCost: 3},
			{Type: armory.SpellTypeSorceries, School: "Gravity", Name: "Rock Sling", SlotCost: 2},
			{Type: armory.SpellTypeIncantations, School: "Dragon Cult", Name: "Lightning Spear", SlotCost: 2},
			{Type: armory.SpellTypeIncantations, School: "Golden Order", Name: "Golden Vow", SlotCost: 5},
			{Type: armory.SpellTypeIncantations, School: "Bestial", Name: "Beast Claw", SlotCost: 2},
		},
		ArmorSets: []armory.ArmorSet{
			{Name: "Lusat's Set", BonusSchool: "Glintstone"},
			{Name: "Knight Set"},
			{Name: "Beast Champion Set", BonusSchool: "Bestial"},
		},
		Spirits: []armory.Spirit{
			{Name: "Mimic Tear"},
			{Name: "Black Knife Tiche"},
		},
	}
}

// CreateMinimalCatalog returns the smallest valid catalog: one weapon,
// one armor set and nothing else
func CreateMinimalCatalog() *armory.Catalog {
	return &armory.Catalog{
		Source:       TestCatalogSource,
		Weapons:      []armory.Weapon{{Class: "Straight Swords", Name: WeaponBroadsword}},
		OffhandItems: []armory.OffhandItem{},
		Spells:       []armory.Spell{},
		ArmorSets:    []armory.ArmorSet{{Name: "Knight Set"}},
		Spirits:      []armory.Spirit{},
	}
}
