package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
)

// Default sizing constants.
const (
	// DefaultPixelSize converts stroke thickness (pixels) to world units.
	DefaultPixelSize = 1.0 / 1000

	// editPointSize is the edit overlay dot size in pixels.
	editPointSize = 4

	// editSelectedSize is the size of selected edit dots in pixels.
	editSelectedSize = 6
)

// Edit overlay colors.
var (
	editSelectColor   = ink.RGB(1, 0.5, 0)
	editUnselectColor = ink.RGB(0, 0, 0)
)

// Builder produces vertex batches for the draw engine.
// The zero value uses DefaultPixelSize.
type Builder struct {
	// PixelSize converts thickness in pixels to world units.
	PixelSize float32
}

// New returns a builder using DefaultPixelSize.
func New() *Builder {
	return &Builder{PixelSize: DefaultPixelSize}
}

func (b *Builder) pixelSize() float32 {
	if b == nil || b.PixelSize <= 0 {
		return DefaultPixelSize
	}
	return b.PixelSize
}

// Fill triangulates the interior of a stroke as a fan around its first
// point. Strokes with fewer than three points produce an empty batch.
func (b *Builder) Fill(s *ink.Stroke, color ink.RGBA) *render.Batch {
	pts := make([]f32.Vec2, len(s.Points))
	zs := make([]float32, len(s.Points))
	for i, p := range s.Points {
		pts[i] = f32.Vec2{p.X, p.Y}
		zs[i] = p.Z
	}
	return render.NewBatch("fill", fan(pts, zs, color))
}

// Stroke builds the outline of a stroke as one quad per segment, each
// expanded sideways by half the pressure-scaled thickness. Frame is
// accepted for builders that need per-frame data; this one does not.
func (b *Builder) Stroke(_ *ink.Frame, s *ink.Stroke, thickness int, color ink.RGBA) *render.Batch {
	n := len(s.Points)
	if s.Flags&ink.StrokeCyclic != 0 && n > 2 {
		n++
	}
	v := newVertices((n - 1) * 6)
	ps := b.pixelSize()
	for i := 0; i+1 < n; i++ {
		p0 := s.Points[i%len(s.Points)]
		p1 := s.Points[(i+1)%len(s.Points)]
		v.segment(p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z,
			halfWidth(thickness, p0.Pressure, ps),
			halfWidth(thickness, p1.Pressure, ps),
			color.WithAlpha(color.A*strength(p0.Strength)),
			color.WithAlpha(color.A*strength(p1.Strength)))
	}
	return render.NewBatch("stroke", v.data)
}

// Point builds a single volumetric dot.
func (b *Builder) Point(p ink.Point, thickness int, color ink.RGBA) *render.Batch {
	v := newVertices(6)
	v.dot(p.X, p.Y, p.Z, halfWidth(thickness, p.Pressure, b.pixelSize()), color)
	return render.NewBatch("point", v.data)
}

// EditOverlay builds one dot per point of a selected stroke. Selected
// points are larger and drawn in the selection color; alpha scales every
// dot. With ink.DataShowEditLines set, the points are also joined by a
// thin line.
func (b *Builder) EditOverlay(s *ink.Stroke, alpha float32, flags ink.DataFlags) *render.Batch {
	ps := b.pixelSize()
	count := len(s.Points) * 6
	showLines := flags&ink.DataShowEditLines != 0 && len(s.Points) > 1
	if showLines {
		count += (len(s.Points) - 1) * 6
	}
	v := newVertices(count)
	if showLines {
		line := editUnselectColor.WithAlpha(alpha)
		for i := 0; i+1 < len(s.Points); i++ {
			p0, p1 := s.Points[i], s.Points[i+1]
			v.segment(p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z, ps/2, ps/2, line, line)
		}
	}
	for _, p := range s.Points {
		size, color := float32(editPointSize), editUnselectColor
		if p.Flags&ink.PointSelect != 0 {
			size, color = editSelectedSize, editSelectColor
		}
		v.dot(p.X, p.Y, p.Z, size*ps/2, color.WithAlpha(alpha))
	}
	return render.NewBatch("edit", v.data)
}

// LivePoint builds a dot for a live buffer holding a single point.
func (b *Builder) LivePoint(buf *ink.Buffer, thickness int) *render.Batch {
	v := newVertices(6)
	if len(buf.Points) > 0 {
		p := buf.Points[0]
		v.dot(p.X, p.Y, 0, halfWidth(thickness, p.Pressure, b.pixelSize()), buf.Stroke)
	}
	return render.NewBatch("live_point", v.data)
}

// LivePolyline builds the outline of the live buffer with every point
// transformed by m.
func (b *Builder) LivePolyline(buf *ink.Buffer, m f32.Mat4, thickness int) *render.Batch {
	n := len(buf.Points)
	if n < 2 {
		return render.NewBatch("live_stroke", nil)
	}
	v := newVertices((n - 1) * 6)
	ps := b.pixelSize()
	for i := 0; i+1 < n; i++ {
		p0, p1 := buf.Points[i], buf.Points[i+1]
		x0, y0, z0 := ink.TransformPoint(m, p0.X, p0.Y, 0)
		x1, y1, z1 := ink.TransformPoint(m, p1.X, p1.Y, 0)
		v.segment(x0, y0, z0, x1, y1, z1,
			halfWidth(thickness, p0.Pressure, ps),
			halfWidth(thickness, p1.Pressure, ps),
			buf.Stroke.WithAlpha(buf.Stroke.A*strength(p0.Strength)),
			buf.Stroke.WithAlpha(buf.Stroke.A*strength(p1.Strength)))
	}
	return render.NewBatch("live_stroke", v.data)
}

// LiveFill triangulates the simulated fill of the live buffer.
func (b *Builder) LiveFill(points []ink.BufferPoint, color ink.RGBA) *render.Batch {
	pts := make([]f32.Vec2, len(points))
	for i, p := range points {
		pts[i] = f32.Vec2{p.X, p.Y}
	}
	return render.NewBatch("live_fill", fan(pts, nil, color))
}

// halfWidth returns half of the pressure-scaled thickness in world units.
func halfWidth(thickness int, pressure, pixelSize float32) float32 {
	if pressure <= 0 {
		pressure = 1
	}
	return math32.Max(0, float32(thickness)*pressure*pixelSize/2)
}

// strength maps a point strength to an alpha factor; unset strength is opaque.
func strength(s float32) float32 {
	if s <= 0 {
		return 1
	}
	return math32.Min(1, s)
}
