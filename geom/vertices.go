package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
)

// vertices accumulates packed vertex data.
type vertices struct {
	data []float32
}

func newVertices(n int) *vertices {
	if n < 0 {
		n = 0
	}
	return &vertices{data: make([]float32, 0, n*render.FloatsPerVertex)}
}

// add appends one vertex. w carries the dot radius or the side of a
// stroke quad for the shaders.
func (v *vertices) add(x, y, z, w float32, c ink.RGBA) {
	v.data = append(v.data, x, y, z, w, c.R, c.G, c.B, c.A)
}

// segment appends a quad covering the segment p0-p1 with half widths
// w0 and w1, as two triangles.
func (v *vertices) segment(x0, y0, z0, x1, y1, z1, w0, w1 float32, c0, c1 ink.RGBA) {
	dx, dy := x1-x0, y1-y0
	l := math32.Sqrt(dx*dx + dy*dy)
	var nx, ny float32
	if l > 0 {
		nx, ny = -dy/l, dx/l
	}
	ax, ay := x0+nx*w0, y0+ny*w0
	bx, by := x0-nx*w0, y0-ny*w0
	cx, cy := x1+nx*w1, y1+ny*w1
	ex, ey := x1-nx*w1, y1-ny*w1

	v.add(ax, ay, z0, 1, c0)
	v.add(bx, by, z0, -1, c0)
	v.add(cx, cy, z1, 1, c1)

	v.add(bx, by, z0, -1, c0)
	v.add(ex, ey, z1, -1, c1)
	v.add(cx, cy, z1, 1, c1)
}

// dot appends a square of radius r centred on (x, y, z) as two triangles.
// The radius is also stored in w so the point shader can round it.
func (v *vertices) dot(x, y, z, r float32, c ink.RGBA) {
	v.add(x-r, y-r, z, r, c)
	v.add(x+r, y-r, z, r, c)
	v.add(x+r, y+r, z, r, c)

	v.add(x-r, y-r, z, r, c)
	v.add(x+r, y+r, z, r, c)
	v.add(x-r, y+r, z, r, c)
}

// fan triangulates a polygon as a fan around its first vertex. zs may be
// nil for flat polygons.
func fan(pts []f32.Vec2, zs []float32, c ink.RGBA) []float32 {
	if len(pts) < 3 {
		return nil
	}
	v := newVertices((len(pts) - 2) * 3)
	z := func(i int) float32 {
		if zs == nil {
			return 0
		}
		return zs[i]
	}
	for i := 1; i+1 < len(pts); i++ {
		v.add(pts[0][0], pts[0][1], z(0), 0, c)
		v.add(pts[i][0], pts[i][1], z(i), 0, c)
		v.add(pts[i+1][0], pts[i+1][1], z(i+1), 0, c)
	}
	return v.data
}
