package armory

// SpellType is the casting family a spell belongs to
type SpellType string

// Spell types
const (
	SpellTypeSorceries    SpellType = "Sorceries"
	SpellTypeIncantations SpellType = "Incantations"
)

// GripMode is how the main hand weapon is held
type GripMode string

// Grip modes, valued with their display labels
const (
	GripOneHanded GripMode = "1-Handed"
	GripTwoHanded GripMode = "2-Handed"
	GripDualWield GripMode = "Dual Wield"
)

// Off-hand classes that decide spellcasting
const (
	ClassGlintstoneStaves = "Glintstone Staves"
	ClassSacredSeals      = "Sacred Seals"
	// The source workbook spells it this way
	ClassUniversalCatalist = "Universal Catalist"
	ClassUniversalCatalyst = "Universal Catalyst"

	// ShieldClassMarker is matched as a substring of the off-hand class
	ShieldClassMarker = "Shield"
)

// WeaponCarianSorcerySword grants sorceries in any grip
const WeaponCarianSorcerySword = "Carian Sorcery Sword"

// Display sentinels
const (
	OffHandNone      = "none"
	OffHandDualWield = "(dual wield)"
	SpiritNone       = "none"
)

// SpellSlotBudget is the number of memory slots a build can fill
const SpellSlotBudget = 10
