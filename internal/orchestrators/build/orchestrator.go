// Package build implements the build orchestrator: one randomized, rule
// constrained loadout per call, drawn from a read-only catalog.
package build

//go:generate mockgen -destination=mock/mock_service.go -package=buildmock github.com/KirkDiggler/build-roller/internal/orchestrators/build Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/build-roller/internal/errors"
	"github.com/KirkDiggler/build-roller/internal/pkg/chance"
	"github.com/KirkDiggler/build-roller/internal/pkg/clock"
	"github.com/KirkDiggler/build-roller/internal/pkg/idgen"
)

// EventBuildGenerated is published with the new build as its source
const EventBuildGenerated = "build.generated"

// Service defines the interface for build generation
type Service interface {
	// Generate rolls one build from the catalog
	// Returns errors.InvalidArgument for a missing input or catalog
	// Returns errors.FailedPrecondition when the catalog has no weapons or armor sets
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the build orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	drawer   *chance.Drawer
	idGen    idgen.Generator
	clock    clock.Clock
	eventBus events.EventBus
}

// NewOrchestrator creates a new build orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	drawer, err := chance.New(cfg.Roller)
	if err != nil {
		return nil, err
	}

	return &orchestrator{
		drawer:   drawer,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		eventBus: cfg.EventBus,
	}, nil
}

// Generate rolls main hand, grip, spells, armor and spirit in that order
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Catalog.Validate(); err != nil {
		return nil, err
	}

	r := newRoll(o.drawer, input.Catalog)
	steps := []struct {
		name string
		run  func() error
	}{
		{"main hand", r.pickMainHand},
		{"grip", r.resolveGrip},
		{"spells", r.selectSpells},
		{"armor", r.selectArmor},
		{"spirit", r.selectSpirit},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", step.name)
		}
	}

	build := r.build
	build.ID = o.idGen.Generate()
	build.GeneratedAt = o.clock.Now()

	// the build is already rolled, a missed notification does not void it
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(EventBuildGenerated, build, nil)); err != nil {
		slog.Warn("Failed to publish build event", "build_id", build.ID, "error", err)
	}

	slog.Info("Build generated",
		"build_id", build.ID,
		"main_hand", build.MainHand,
		"grip", build.Grip,
		"off_hand", build.OffHand,
		"spells", len(build.Spells),
		"slots_used", build.SlotsUsed,
	)

	return &GenerateOutput{Build: build}, nil
}

var _ Service = (*orchestrator)(nil)
