package breathing

import (
	"time"

	"github.com/ayoisaiah/mindful/internal/phase"
)

// Dimensions of the square traced during box breathing, in canvas units. The
// canvas is Offset+SideLength+Offset units wide.
const (
	Offset     = 20
	SideLength = 220
	CanvasSize = Offset*2 + SideLength
)

// Sides of the square, in the order they are traced.
const (
	SideTop    = "top"
	SideRight  = "right"
	SideBottom = "bottom"
	SideLeft   = "left"
)

// BoxSideSeconds is the fixed duration of every box breathing side.
const BoxSideSeconds = 4

// Point is a position on the box canvas.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Segment is a straight line between two points.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Origin is the corner every box breathing session starts from.
var Origin = Point{X: Offset, Y: Offset}

// corners maps a side to the corner the marker travels to along it.
var corners = map[string]Point{
	SideTop:    {X: Offset + SideLength, Y: Offset},
	SideRight:  {X: Offset + SideLength, Y: Offset + SideLength},
	SideBottom: {X: Offset, Y: Offset + SideLength},
	SideLeft:   {X: Offset, Y: Offset},
}

// lines maps a side to the segment drawn while it is traced.
var lines = map[string]Segment{
	SideTop: {
		From: Point{X: Offset, Y: Offset},
		To:   Point{X: Offset + SideLength, Y: Offset},
	},
	SideRight: {
		From: Point{X: Offset + SideLength, Y: Offset},
		To:   Point{X: Offset + SideLength, Y: Offset + SideLength},
	},
	SideBottom: {
		From: Point{X: Offset + SideLength, Y: Offset + SideLength},
		To:   Point{X: Offset, Y: Offset + SideLength},
	},
	SideLeft: {
		From: Point{X: Offset, Y: Offset + SideLength},
		To:   Point{X: Offset, Y: Offset},
	},
}

// Corner returns the end corner of side.
func Corner(side string) (Point, bool) {
	p, ok := corners[side]
	return p, ok
}

// Line returns the segment traced along side.
func Line(side string) (Segment, bool) {
	s, ok := lines[side]
	return s, ok
}

// BoxSequence returns the four fixed sides of box breathing.
func BoxSequence() phase.Sequence {
	return phase.Sequence{
		{Side: SideTop, Label: phase.Inhale, Seconds: BoxSideSeconds},
		{Side: SideRight, Label: phase.Hold, Seconds: BoxSideSeconds},
		{Side: SideBottom, Label: phase.Exhale, Seconds: BoxSideSeconds},
		{Side: SideLeft, Label: phase.Hold, Seconds: BoxSideSeconds},
	}
}

// Marker is the animated dot on the box path. It moves linearly from From to
// To over Duration, starting at Started.
type Marker struct {
	Started  time.Time
	From     Point
	To       Point
	Duration time.Duration
}

// stationary returns a marker resting at p.
func stationary(p Point) Marker {
	return Marker{From: p, To: p}
}

// Progress returns how far along its path the marker is at now, in [0, 1].
func (m Marker) Progress(now time.Time) float64 {
	if m.Duration <= 0 {
		return 1
	}

	progress := float64(now.Sub(m.Started)) / float64(m.Duration)

	switch {
	case progress < 0:
		return 0
	case progress > 1:
		return 1
	default:
		return progress
	}
}

// At returns the rendered position of the marker at now.
func (m Marker) At(now time.Time) Point {
	progress := m.Progress(now)

	return Point{
		X: m.From.X + int(float64(m.To.X-m.From.X)*progress),
		Y: m.From.Y + int(float64(m.To.Y-m.From.Y)*progress),
	}
}
