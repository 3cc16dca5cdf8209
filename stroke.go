package ink

// Space identifies the coordinate space a stroke was drawn in.
type Space uint8

// Space constants.
const (
	// Space3D strokes live in object space and follow the 3D view.
	Space3D Space = iota

	// Space2DView strokes are anchored to the viewport.
	Space2DView

	// Space2DImage strokes are anchored to an image editor canvas.
	Space2DImage
)

// String returns a human-readable name for the space.
func (s Space) String() string {
	switch s {
	case Space3D:
		return "3D"
	case Space2DView:
		return "2DView"
	case Space2DImage:
		return "2DImage"
	default:
		return "Unknown"
	}
}

// StrokeFlags holds per-stroke state bits.
type StrokeFlags uint16

// Stroke flag constants.
const (
	// StrokeSelect marks a stroke as selected in edit mode.
	StrokeSelect StrokeFlags = 1 << iota

	// Stroke2DView places the stroke in viewport space.
	Stroke2DView

	// Stroke2DImage places the stroke in image space.
	Stroke2DImage

	// StrokeCyclic closes the stroke back onto its first point.
	StrokeCyclic
)

// PointFlags holds per-point state bits.
type PointFlags uint8

// PointSelect marks a point as selected in edit mode.
const PointSelect PointFlags = 1

// Point is one sample of a stroke.
type Point struct {
	X, Y, Z  float32
	Pressure float32
	Strength float32
	Flags    PointFlags
}

// Stroke is an ordered sequence of points drawn with one material.
type Stroke struct {
	Points    []Point
	Thickness int
	Material  *Material
	Flags     StrokeFlags
}

// NewStroke creates a stroke from points with the given thickness and material.
func NewStroke(m *Material, thickness int, pts ...Point) *Stroke {
	return &Stroke{
		Points:    pts,
		Thickness: thickness,
		Material:  m,
	}
}

// Space reports the coordinate space of the stroke.
func (s *Stroke) Space() Space {
	switch {
	case s.Flags&Stroke2DView != 0:
		return Space2DView
	case s.Flags&Stroke2DImage != 0:
		return Space2DImage
	default:
		return Space3D
	}
}

// IsSelected reports whether the stroke is selected.
func (s *Stroke) IsSelected() bool {
	return s.Flags&StrokeSelect != 0
}

// Pt is a shorthand for a full-pressure, full-strength point.
func Pt(x, y, z float32) Point {
	return Point{X: x, Y: y, Z: z, Pressure: 1, Strength: 1}
}
