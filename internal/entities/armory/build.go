package armory

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Build is one generated loadout. It is never persisted.
type Build struct {
	ID       string   `json:"id" yaml:"id"`
	MainHand string   `json:"main_hand" yaml:"main_hand"`
	Grip     GripMode `json:"grip" yaml:"grip"`
	OffHand  string   `json:"off_hand" yaml:"off_hand"`
	Armor    string   `json:"armor" yaml:"armor"`
	Spells   []string `json:"spells" yaml:"spells"`
	Spirit   string   `json:"spirit" yaml:"spirit"`

	SlotsUsed   int       `json:"slots_used" yaml:"slots_used"`
	Schools     []string  `json:"schools,omitempty" yaml:"schools,omitempty"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// GetID returns the build's ID
func (b *Build) GetID() string {
	return b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *Build) GetType() string {
	return "build"
}

// HasSpirit reports whether a companion was rolled
func (b *Build) HasSpirit() bool {
	return b.Spirit != "" && b.Spirit != SpiritNone
}

var _ core.Entity = (*Build)(nil)
