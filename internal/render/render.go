// Package render writes a generated build as a text sheet, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/build-roller/internal/entities/armory"
	"github.com/KirkDiggler/build-roller/internal/errors"
)

// Format selects the output encoding
type Format string

// Supported formats
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a user supplied format name
func ParseFormat(s string) (Format, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if f == "" {
		return FormatText, nil
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", f, Formats(), vb)
	if err := vb.Build(); err != nil {
		return "", err
	}
	return Format(f), nil
}

// Build writes b to w in the requested format
func Build(w io.Writer, b *armory.Build, format Format) error {
	if b == nil {
		return errors.InvalidArgument("build is required")
	}

	switch format {
	case FormatText, "":
		return writeText(w, b)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return errors.Wrap(err, "failed to encode build as json")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return errors.Wrap(err, "failed to encode build as yaml")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to flush yaml")
		}
		return nil
	default:
		return errors.InvalidArgumentf("unknown format %q", format)
	}
}

func writeText(w io.Writer, b *armory.Build) error {
	var sb strings.Builder

	sb.WriteString("EQUIPMENT\n")
	field(&sb, "Main Hand", b.MainHand)
	field(&sb, "Grip", string(b.Grip))
	field(&sb, "Off Hand", b.OffHand)
	field(&sb, "Armor", b.Armor)
	field(&sb, "Spirit", b.Spirit)

	fmt.Fprintf(&sb, "\nMAGIC (%d/%d slots)\n", b.SlotsUsed, armory.SpellSlotBudget)
	if len(b.Spells) == 0 {
		sb.WriteString("  (no spells)\n")
	}
	for _, s := range b.Spells {
		fmt.Fprintf(&sb, "  • %s\n", s)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "failed to write build")
	}
	return nil
}

func field(sb *strings.Builder, label, value string) {
	fmt.Fprintf(sb, "  %-10s %s\n", label+":", value)
}
