package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/mutate"
)

// Sentinel errors of the correction codec and compiler.
var (
	// ErrNilBuilding reports a nil snapshot.
	ErrNilBuilding = errors.New("agent: building is nil")
	// ErrBadCorrection reports a correction the compiler cannot accept:
	// unknown action or kind, or a missing required field.
	ErrBadCorrection = errors.New("agent: bad correction")
	// ErrUnknownTag reports a tag that names no element of the snapshot.
	ErrUnknownTag = errors.New("agent: unknown element tag")
)

// Correction is one suggested edit in tag space, the shape the prompt
// asks the model to respond with.
type Correction struct {
	// Action is "modify", "add" or "remove".
	Action string `json:"action"`
	// Target is the element tag; for added openings it names the host
	// wall, for added walls it stays empty.
	Target string `json:"target,omitempty"`
	// Kind names the element type for adds: "wall", "door" or "window".
	Kind string `json:"kind,omitempty"`
	// Fields carries the numeric payload. Keys depend on action and
	// kind; see the prompt instructions for the vocabulary.
	Fields map[string]float64 `json:"fields,omitempty"`
	// Reason is the model's justification, carried through for logs.
	Reason string `json:"reason,omitempty"`
}

// ParseCorrections decodes a model response. It accepts the documented
// {"corrections": [...]} object as well as a bare array, either one
// optionally wrapped in markdown code fences.
func ParseCorrections(raw []byte) ([]Correction, error) {
	text := stripFences(string(raw))

	var wrapper struct {
		Corrections []Correction `json:"corrections"`
	}
	if err := json.Unmarshal([]byte(text), &wrapper); err == nil && wrapper.Corrections != nil {
		return checkShape(wrapper.Corrections)
	}

	var list []Correction
	if err := json.Unmarshal([]byte(text), &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCorrection, err)
	}
	return checkShape(list)
}

// checkShape rejects responses the compiler could not attribute later:
// unknown actions and missing targets fail here with the list index.
func checkShape(cs []Correction) ([]Correction, error) {
	for i, c := range cs {
		switch c.Action {
		case "modify", "add", "remove":
		default:
			return nil, fmt.Errorf("%w: corrections[%d]: action %q", ErrBadCorrection, i, c.Action)
		}
		if c.Target == "" && !(c.Action == "add" && c.Kind == "wall") {
			return nil, fmt.Errorf("%w: corrections[%d]: missing target", ErrBadCorrection, i)
		}
	}
	return cs, nil
}

// stripFences drops markdown code fence lines. Models wrap JSON in
// fences often enough that the decoder tolerates it.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	var keep []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		keep = append(keep, line)
	}
	return strings.Join(keep, "\n")
}

// Ops compiles corrections into mutation ops against the snapshot,
// resolving tags by the same authoring-order numbering Prompt prints.
// Added elements get fresh uuid-backed ids. Compilation stops at the
// first bad correction, wrapping its list index.
func Ops(b *model.Building, corrs []Correction) ([]mutate.Op, error) {
	if b == nil {
		return nil, ErrNilBuilding
	}
	tt := newTagTable(b)
	ops := make([]mutate.Op, 0, len(corrs))
	for i, c := range corrs {
		op, err := compile(tt, c)
		if err != nil {
			return nil, fmt.Errorf("corrections[%d]: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func compile(tt tagTable, c Correction) (mutate.Op, error) {
	switch c.Action {
	case "modify":
		return compileModify(tt, c)
	case "add":
		return compileAdd(tt, c)
	case "remove":
		return compileRemove(tt, c)
	default:
		return nil, fmt.Errorf("%w: action %q", ErrBadCorrection, c.Action)
	}
}

func compileModify(tt tagTable, c Correction) (mutate.Op, error) {
	if id, ok := tt.open[c.Target]; ok {
		w, ok := c.Fields["width"]
		if !ok {
			return nil, fmt.Errorf("%w: modify %s carries no width", ErrBadCorrection, c.Target)
		}
		return mutate.SetOpeningWidth(id, w), nil
	}
	if id, ok := tt.wall[c.Target]; ok {
		dA := geom.Point{X: c.Fields["dax"], Y: c.Fields["day"]}
		dB := geom.Point{X: c.Fields["dbx"], Y: c.Fields["dby"]}
		if dA == (geom.Point{}) && dB == (geom.Point{}) {
			return nil, fmt.Errorf("%w: modify %s carries no endpoint delta", ErrBadCorrection, c.Target)
		}
		return mutate.MoveWall(id, dA, dB), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTag, c.Target)
}

func compileAdd(tt tagTable, c Correction) (mutate.Op, error) {
	switch c.Kind {
	case "door", "window":
		id, ok := tt.wall[c.Target]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTag, c.Target)
		}
		kind := model.OpeningDoor
		if c.Kind == "window" {
			kind = model.OpeningWindow
		}
		return mutate.AddOpening(id, model.Opening{
			ID:     freshID(c.Kind),
			Offset: c.Fields["offset"],
			Width:  c.Fields["width"],
			Kind:   kind,
		}), nil
	case "wall":
		kind := model.WallPartition
		if c.Fields["bearing"] > 0 {
			kind = model.WallBearing
		}
		return mutate.AddWall(model.Wall{
			ID:        freshID("wall"),
			A:         geom.Point{X: c.Fields["ax"], Y: c.Fields["ay"]},
			B:         geom.Point{X: c.Fields["bx"], Y: c.Fields["by"]},
			Thickness: c.Fields["thickness"],
			Floor:     int(c.Fields["floor"]),
			Kind:      kind,
		}), nil
	default:
		return nil, fmt.Errorf("%w: cannot add %q", ErrBadCorrection, c.Kind)
	}
}

func compileRemove(tt tagTable, c Correction) (mutate.Op, error) {
	if id, ok := tt.open[c.Target]; ok {
		return mutate.RemoveOpening(id), nil
	}
	if id, ok := tt.wall[c.Target]; ok {
		return mutate.RemoveWall(id), nil
	}
	if id, ok := tt.room[c.Target]; ok {
		return mutate.RemoveRoom(id), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownTag, c.Target)
}

// freshID mints an id for a model-added element. The uuid carries the
// uniqueness, the prefix keeps plans readable.
func freshID(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}
