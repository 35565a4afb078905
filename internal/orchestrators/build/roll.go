package build

import (
	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/pkg/chance"
)

// roll carries the state of a single generation across its steps.
// The catalog is only read; every pool is a private copy.
type roll struct {
	drawer  *chance.Drawer
	catalog *armory.Catalog
	build   *armory.Build

	mainHand      armory.Weapon
	specialHybrid bool
	offhandItem   *armory.OffhandItem
	isShield      bool

	// schools in acquisition order, plus a set for weighting lookups
	schools   []string
	schoolSet map[string]bool
}

func newRoll(drawer *chance.Drawer, catalog *armory.Catalog) *roll {
	return &roll{
		drawer:    drawer,
		catalog:   catalog,
		build:     &armory.Build{Spells: []string{}},
		schoolSet: make(map[string]bool),
	}
}

func (r *roll) pickMainHand() error {
	i, err := r.drawer.Index(len(r.catalog.Weapons))
	if err != nil {
		return err
	}

	r.mainHand = r.catalog.Weapons[i]
	r.specialHybrid = r.mainHand.Name == armory.WeaponCarianSorcerySword
	r.build.MainHand = r.mainHand.Name
	return nil
}

func (r *roll) recordSchool(school string) {
	if school == "" || r.schoolSet[school] {
		return
	}
	r.schoolSet[school] = true
	r.schools = append(r.schools, school)
	r.build.Schools = r.schools
}
