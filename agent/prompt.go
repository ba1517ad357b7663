package agent

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlplan/model"
	"github.com/katalvlaran/lvlplan/rules"
)

// promptInstructions closes every review request. It spells out the
// response schema and the field vocabulary per action, because the
// compiler in Ops accepts exactly this shape and nothing else.
const promptInstructions = `
## Your task

Suggest corrections that resolve the findings, most severe first.
Respond with a JSON object only, no prose, in this form:

{"corrections": [{"action": "...", "target": "...", "kind": "...", "fields": {...}, "reason": "..."}]}

Allowed actions:
- "modify" a door or window: target its tag, fields {"width": meters}.
- "modify" a wall: target its tag, fields with endpoint deltas in
  meters, any of "dax", "day", "dbx", "dby".
- "add" a door or window: target the host wall tag, kind "door" or
  "window", fields {"offset": meters, "width": meters}.
- "add" a wall: kind "wall", no target, fields {"ax", "ay", "bx", "by"}
  plus optional "thickness" and "floor"; "bearing": 1 marks it
  load-bearing.
- "remove" a wall, door, window or room: target its tag.

Tags reference the element lists above. Keep corrections minimal and
leave sound elements alone.
`

// Prompt renders the snapshot and its report into a review request.
// The element inventory uses the same authoring-order tags that Ops
// resolves, so a response can name elements without knowing their ids.
// A nil report reads as a clean one.
func Prompt(b *model.Building, rep *rules.Report) string {
	if b == nil {
		return ""
	}
	var sb strings.Builder

	name := b.Name
	if name == "" {
		name = "unnamed building"
	}
	fmt.Fprintf(&sb, "# Design review: %s\n\n", name)
	fmt.Fprintf(&sb, "%d floor(s), %d room(s), %d wall(s).\n\n", len(b.Floors), len(b.Rooms), len(b.Walls))

	sb.WriteString("## Elements\n\n")
	writeWalls(&sb, b)
	writeRooms(&sb, b)
	writeShafts(&sb, b)
	writeFindings(&sb, rep)

	sb.WriteString(promptInstructions)
	return sb.String()
}

// writeWalls emits the wall list and, gathered along the way, the door
// and window lists. Opening tags count per kind across all walls, in
// the order the walls declare them.
func writeWalls(sb *strings.Builder, b *model.Building) {
	var doorLines, winLines []string
	doors, wins := 0, 0

	fmt.Fprintf(sb, "### Walls (%d)\n", len(b.Walls))
	for i := range b.Walls {
		w := &b.Walls[i]
		kind := "partition"
		if w.Kind == model.WallBearing {
			kind = "load-bearing"
		}
		fmt.Fprintf(sb, "- W%d %s: (%.2f,%.2f)->(%.2f,%.2f), %.2fm, floor %d, %s\n",
			i+1, w.ID, w.A.X, w.A.Y, w.B.X, w.B.Y, w.Len(), w.Floor, kind)
		for _, o := range w.Openings {
			if o.Kind == model.OpeningDoor {
				doors++
				note := ""
				if o.ID == b.EntranceDoorID {
					note = ", building entrance"
				}
				doorLines = append(doorLines, fmt.Sprintf("- D%d %s: on W%d, offset=%.2fm, width=%.2fm%s",
					doors, o.ID, i+1, o.Offset, o.Width, note))
			} else {
				wins++
				winLines = append(winLines, fmt.Sprintf("- Win%d %s: on W%d, offset=%.2fm, width=%.2fm",
					wins, o.ID, i+1, o.Offset, o.Width))
			}
		}
	}

	fmt.Fprintf(sb, "\n### Doors (%d)\n", len(doorLines))
	for _, line := range doorLines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	fmt.Fprintf(sb, "\n### Windows (%d)\n", len(winLines))
	for _, line := range winLines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

func writeRooms(sb *strings.Builder, b *model.Building) {
	fmt.Fprintf(sb, "\n### Rooms (%d)\n", len(b.Rooms))
	for i := range b.Rooms {
		r := &b.Rooms[i]
		fmt.Fprintf(sb, "- R%d %s: %s, floor %d, %.1fm²\n", i+1, r.ID, r.Type, r.Floor, r.Boundary.Area())
	}
}

// writeShafts lists shafts for context only; they have no tags because
// corrections cannot touch them.
func writeShafts(sb *strings.Builder, b *model.Building) {
	if len(b.Shafts) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n### Shafts (%d)\n", len(b.Shafts))
	for i := range b.Shafts {
		s := &b.Shafts[i]
		fmt.Fprintf(sb, "- %s: %s, floors %d..%d\n", s.ID, s.Kind, s.FloorLo, s.FloorHi)
	}
}

func writeFindings(sb *strings.Builder, rep *rules.Report) {
	if rep == nil || len(rep.Issues) == 0 {
		sb.WriteString("\n## Findings (0)\n\n- none\n")
		return
	}
	fmt.Fprintf(sb, "\n## Findings (%d)\n\n", len(rep.Issues))
	for _, is := range rep.Issues {
		fmt.Fprintf(sb, "- [%s] %s: %s", is.Severity, is.Code, is.Message)
		if len(is.Entities) > 0 {
			fmt.Fprintf(sb, " (entities: %s)", strings.Join(is.Entities, ", "))
		}
		sb.WriteByte('\n')
	}
}
