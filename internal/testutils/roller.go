package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller replays a fixed list of faces and records the die sizes asked for.
// It fails once the script runs out so tests notice unexpected extra draws.
type ScriptedRoller struct {
	faces []int
	Sizes []int
}

// NewScriptedRoller creates a roller that returns faces in order
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

// Roll returns the next scripted face
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.Sizes = append(r.Sizes, size)
	if len(r.faces) == 0 {
		return 0, fmt.Errorf("scripted roller exhausted on d%d", size)
	}
	face := r.faces[0]
	r.faces = r.faces[1:]
	return face, nil
}

// RollN returns the next count scripted faces
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	faces := make([]int, count)
	for i := range faces {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return faces, nil
}

// Remaining returns how many scripted faces were not consumed
func (r *ScriptedRoller) Remaining() int {
	return len(r.faces)
}

var _ dice.Roller = (*ScriptedRoller)(nil)
