package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlplan/geom"
	"github.com/katalvlaran/lvlplan/model"
)

// Sentinel errors of the renderers.
var (
	// ErrNilBuilding is returned when a writer receives a nil snapshot.
	ErrNilBuilding = errors.New("render: building is nil")

	// ErrNilGraph is returned when Mermaid receives a nil graph.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrNilIndex is returned when Mermaid receives a nil index.
	ErrNilIndex = errors.New("render: index is nil")

	// ErrUnknownFloor is returned when the requested floor is not part
	// of the snapshot.
	ErrUnknownFloor = errors.New("render: unknown floor")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Option configures the SVG writer via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation by the SVG call that consumed it.
type Option func(*Options)

// Options holds the tunable parameters of one SVG call.
type Options struct {
	// Scale is the pixel density, in pixels per meter.
	Scale float64

	// Labels toggles the title, room and shaft text.
	Labels bool

	// internal error recorded during option parsing
	err error
}

// DefaultScale is the pixel density used when no WithScale option is
// given.
const DefaultScale = 50.0

// DefaultOptions returns Options with the default density and labels
// on.
func DefaultOptions() Options {
	return Options{Scale: DefaultScale, Labels: true}
}

// WithScale sets the pixel density. Non-positive values are invalid.
func WithScale(pxPerMeter float64) Option {
	return func(o *Options) {
		if pxPerMeter <= 0 {
			o.err = fmt.Errorf("%w: scale must be positive (%v)", ErrOptionViolation, pxPerMeter)
			return
		}
		o.Scale = pxPerMeter
	}
}

// WithLabels toggles the title, room and shaft text.
func WithLabels(on bool) Option {
	return func(o *Options) { o.Labels = on }
}

// Plan palette, following common drafting conventions: green
// structure, amber partitions, blue door glyphs, green glass.
const (
	colorCanvas    = "#FAFAFA"
	colorSlab      = "#F0F0F0"
	colorBearing   = "#2E7D32"
	colorPartition = "#F9A825"
	colorDoor      = "#2196F3"
	colorWindow    = "#4CAF50"
	colorShaftFill = "#E1BEE7"
	colorShaftLine = "#7B1FA2"
	colorRoomLine  = "#9E9E9E"
	colorLabel     = "#616161"
	colorTitle     = "#424242"
	colorRoomOther = "#E0E0E0"
)

// roomFill maps a room type to its plan fill. Unlisted types fall back
// to colorRoomOther.
var roomFill = map[model.RoomType]string{
	model.RoomLiving:       "#BBDEFB",
	model.RoomBedroom:      "#C8E6C9",
	model.RoomKitchen:      "#FFE0B2",
	model.RoomBathroom:     "#B3E5FC",
	model.RoomWC:           "#B3E5FC",
	model.RoomEntranceHall: "#F5F5F5",
	model.RoomCorridor:     "#EEEEEE",
	model.RoomStorage:      "#D7CCC8",
	model.RoomLanding:      "#E1BEE7",
}

// viewMargin is the world-space padding drawn around the plan, in
// meters.
const viewMargin = 0.5

// textEsc escapes label text for XML character data.
var textEsc = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// SVG writes one floor of the snapshot as a standalone SVG document.
//
// Elements are emitted back to front in authoring order: canvas, slabs,
// rooms, shafts, walls, openings, then labels. Shafts appear on every
// floor they span. The floor must exist in the snapshot; an empty floor
// renders as a blank canvas.
func SVG(w io.Writer, b *model.Building, floor int, opts ...Option) error {
	// 1) Validate inputs and fold options over the defaults.
	if b == nil {
		return ErrNilBuilding
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o.err
	}
	if !hasFloor(b, floor) {
		return fmt.Errorf("%w: %d", ErrUnknownFloor, floor)
	}

	// 2) Collect the floor's entities and their world-space extent.
	var (
		slabs  []*model.Slab
		rooms  []*model.Room
		walls  []*model.Wall
		shafts []*model.Shaft
		bb     bounds
	)
	for i := range b.Slabs {
		if b.Slabs[i].Floor == floor {
			slabs = append(slabs, &b.Slabs[i])
			bb.addPoly(b.Slabs[i].Outline)
		}
	}
	for i := range b.Rooms {
		if b.Rooms[i].Floor == floor {
			rooms = append(rooms, &b.Rooms[i])
			bb.addPoly(b.Rooms[i].Boundary)
		}
	}
	for i := range b.Walls {
		if b.Walls[i].Floor == floor {
			walls = append(walls, &b.Walls[i])
			bb.add(b.Walls[i].A)
			bb.add(b.Walls[i].B)
		}
	}
	for i := range b.Shafts {
		if b.Shafts[i].Spans(floor) {
			shafts = append(shafts, &b.Shafts[i])
			bb.addPoly(b.Shafts[i].Footprint)
		}
	}

	// 3) Derive the pixel viewport: meters to pixels, Y flipped.
	v := newView(bb, o.Scale)

	// 4) Assemble the document back to front.
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		px(v.w), px(v.h), px(v.w), px(v.h))
	sb.WriteString("\n")
	if len(shafts) > 0 {
		sb.WriteString("  <defs>\n")
		fmt.Fprintf(&sb, "    <pattern id=\"shaft-hatch\" width=\"6\" height=\"6\" patternUnits=\"userSpaceOnUse\" patternTransform=\"rotate(45)\">\n")
		fmt.Fprintf(&sb, "      <line x1=\"0\" y1=\"0\" x2=\"0\" y2=\"6\" stroke=\"%s\" stroke-width=\"1\" />\n", colorShaftLine)
		sb.WriteString("    </pattern>\n  </defs>\n")
	}
	fmt.Fprintf(&sb, "  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\" />\n", colorCanvas)

	for _, s := range slabs {
		writePoly(&sb, v, s.ID, s.Outline, fmt.Sprintf("fill=\"%s\" stroke=\"none\"", colorSlab))
	}
	for _, r := range rooms {
		fill, ok := roomFill[r.Type]
		if !ok {
			fill = colorRoomOther
		}
		writePoly(&sb, v, r.ID, r.Boundary, fmt.Sprintf(
			"fill=\"%s\" fill-opacity=\"0.8\" stroke=\"%s\" stroke-width=\"1\" stroke-dasharray=\"3 3\"", fill, colorRoomLine))
	}
	for _, s := range shafts {
		writePoly(&sb, v, s.ID, s.Footprint, fmt.Sprintf(
			"fill=\"%s\" stroke=\"%s\" stroke-width=\"1.5\"", colorShaftFill, colorShaftLine))
		writePoly(&sb, v, "", s.Footprint, `fill="url(#shaft-hatch)" stroke="none"`)
	}
	for _, wall := range walls {
		stroke := colorPartition
		if wall.Kind == model.WallBearing {
			stroke = colorBearing
		}
		writeLine(&sb, v, wall.ID, wall.A, wall.B, stroke, wallDrawThickness(wall)*v.scale)
	}
	for _, wall := range walls {
		writeOpenings(&sb, v, wall)
	}

	// 5) Labels on top: title, rooms at centroid, shafts at centroid.
	if o.Labels {
		title := fmt.Sprintf("floor %d", floor)
		if b.Name != "" {
			title = fmt.Sprintf("%s, floor %d", b.Name, floor)
		}
		fmt.Fprintf(&sb, "  <text x=\"6\" y=\"16\" font-family=\"sans-serif\" font-size=\"14\" fill=\"%s\">%s</text>\n",
			colorTitle, textEsc.Replace(title))
		for _, r := range rooms {
			writeLabel(&sb, v, r.Boundary.Centroid(), 12, colorLabel, r.ID)
		}
		for _, s := range shafts {
			writeLabel(&sb, v, s.Footprint.Centroid(), 11, colorShaftLine, s.ID)
		}
	}
	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func hasFloor(b *model.Building, floor int) bool {
	for _, f := range b.Floors {
		if f.Index == floor {
			return true
		}
	}
	return false
}

// bounds accumulates the world-space extent of the drawn entities.
type bounds struct {
	minX, minY float64
	maxX, maxY float64
	any        bool
}

func (bb *bounds) add(p geom.Point) {
	if !bb.any {
		bb.minX, bb.maxX = p.X, p.X
		bb.minY, bb.maxY = p.Y, p.Y
		bb.any = true
		return
	}
	bb.minX = math.Min(bb.minX, p.X)
	bb.maxX = math.Max(bb.maxX, p.X)
	bb.minY = math.Min(bb.minY, p.Y)
	bb.maxY = math.Max(bb.maxY, p.Y)
}

func (bb *bounds) addPoly(pg geom.Polygon) {
	for _, p := range pg {
		bb.add(p)
	}
}

// view maps world meters (Y up) to SVG pixels (Y down), with a fixed
// margin around the drawn extent.
type view struct {
	scale      float64
	minX, maxY float64
	w, h       float64
}

func newView(bb bounds, scale float64) view {
	if !bb.any {
		bb.minX, bb.minY, bb.maxX, bb.maxY = 0, 0, 0, 0
	}
	return view{
		scale: scale,
		minX:  bb.minX - viewMargin,
		maxY:  bb.maxY + viewMargin,
		w:     (bb.maxX - bb.minX + 2*viewMargin) * scale,
		h:     (bb.maxY - bb.minY + 2*viewMargin) * scale,
	}
}

func (v view) x(m float64) float64 { return (m - v.minX) * v.scale }
func (v view) y(m float64) float64 { return (v.maxY - m) * v.scale }

// px formats a pixel quantity rounded to 1/100 px, trailing zeros
// trimmed, so output stays stable across platforms.
func px(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

// wallDrawThickness is the plotted thickness for walls authored
// without one. Load-bearing walls read as structure, partitions thin.
func wallDrawThickness(w *model.Wall) float64 {
	if w.Thickness > 0 {
		return w.Thickness
	}
	if w.Kind == model.WallBearing {
		return 0.2
	}
	return 0.1
}

func writePoly(sb *strings.Builder, v view, id string, pg geom.Polygon, attrs string) {
	sb.WriteString("  <polygon")
	if id != "" {
		fmt.Fprintf(sb, " id=\"%s\"", id)
	}
	sb.WriteString(" points=\"")
	for i, p := range pg {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(px(v.x(p.X)))
		sb.WriteByte(',')
		sb.WriteString(px(v.y(p.Y)))
	}
	sb.WriteString("\" ")
	sb.WriteString(attrs)
	sb.WriteString(" />\n")
}

func writeLine(sb *strings.Builder, v view, id string, a, b geom.Point, stroke string, width float64) {
	sb.WriteString("  <line")
	if id != "" {
		fmt.Fprintf(sb, " id=\"%s\"", id)
	}
	fmt.Fprintf(sb, " x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\" stroke-linecap=\"square\" />\n",
		px(v.x(a.X)), px(v.y(a.Y)), px(v.x(b.X)), px(v.y(b.Y)), stroke, px(width))
}

func writeLabel(sb *strings.Builder, v view, at geom.Point, size float64, fill, text string) {
	fmt.Fprintf(sb, "  <text x=\"%s\" y=\"%s\" font-family=\"sans-serif\" font-size=\"%s\" fill=\"%s\" text-anchor=\"middle\">%s</text>\n",
		px(v.x(at.X)), px(v.y(at.Y)), px(size), fill, textEsc.Replace(text))
}

// writeOpenings draws each opening as a canvas-colored gap in the wall
// plus its glyph: a blue tick for doors, a green double line for
// windows. Openings of degenerate walls have no placeable span and are
// skipped.
func writeOpenings(sb *strings.Builder, v view, wall *model.Wall) {
	ln := wall.Len()
	if ln < geom.Eps {
		return
	}
	dx := (wall.B.X - wall.A.X) / ln
	dy := (wall.B.Y - wall.A.Y) / ln
	gap := wallDrawThickness(wall)*v.scale + 4
	for _, op := range wall.Openings {
		span := wall.OpeningSpan(op)
		writeLine(sb, v, "", span.A, span.B, colorCanvas, gap)
		if op.Kind == model.OpeningDoor {
			writeLine(sb, v, op.ID, span.A, span.B, colorDoor, 2)
			continue
		}
		// glass symbol: two thin lines either side of the centerline
		off := geom.Point{X: -dy * 0.06, Y: dx * 0.06}
		writeLine(sb, v, op.ID, span.A.Add(off), span.B.Add(off), colorWindow, 1.5)
		off = geom.Point{X: dy * 0.06, Y: -dx * 0.06}
		writeLine(sb, v, "", span.A.Add(off), span.B.Add(off), colorWindow, 1.5)
	}
}
