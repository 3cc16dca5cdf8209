package engine

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
)

// build records one builder call.
type build struct {
	kind      string
	stroke    *ink.Stroke
	thickness int
	color     ink.RGBA
	batch     *render.Batch
}

// recordingBuilder returns a fresh one-vertex batch per call and records
// every call.
type recordingBuilder struct {
	builds []build
}

func (b *recordingBuilder) record(kind string, s *ink.Stroke, thickness int, c ink.RGBA) *render.Batch {
	rb := render.NewBatch(kind, []float32{0, 0, 0, 1, c.R, c.G, c.B, c.A})
	b.builds = append(b.builds, build{kind: kind, stroke: s, thickness: thickness, color: c, batch: rb})
	return rb
}

func (b *recordingBuilder) Fill(s *ink.Stroke, c ink.RGBA) *render.Batch {
	return b.record("fill", s, 0, c)
}

func (b *recordingBuilder) Stroke(_ *ink.Frame, s *ink.Stroke, thickness int, c ink.RGBA) *render.Batch {
	return b.record("stroke", s, thickness, c)
}

func (b *recordingBuilder) Point(_ ink.Point, thickness int, c ink.RGBA) *render.Batch {
	return b.record("point", nil, thickness, c)
}

func (b *recordingBuilder) EditOverlay(s *ink.Stroke, alpha float32, _ ink.DataFlags) *render.Batch {
	return b.record("edit", s, 0, ink.Black.WithAlpha(alpha))
}

func (b *recordingBuilder) LivePoint(buf *ink.Buffer, thickness int) *render.Batch {
	return b.record("live_point", nil, thickness, buf.Stroke)
}

func (b *recordingBuilder) LivePolyline(buf *ink.Buffer, _ f32.Mat4, thickness int) *render.Batch {
	return b.record("live_stroke", nil, thickness, buf.Stroke)
}

func (b *recordingBuilder) LiveFill(_ []ink.BufferPoint, c ink.RGBA) *render.Batch {
	return b.record("live_fill", nil, 0, c)
}

func (b *recordingBuilder) count(kind string) int {
	n := 0
	for _, rb := range b.builds {
		if rb.kind == kind {
			n++
		}
	}
	return n
}

func (b *recordingBuilder) kinds() []string {
	out := make([]string, len(b.builds))
	for i, rb := range b.builds {
		out[i] = rb.kind
	}
	return out
}

func (b *recordingBuilder) reset() {
	b.builds = nil
}

// newTestEngine returns an engine using a recording builder.
func newTestEngine(t *testing.T, opts ...Option) (*Engine, *recordingBuilder) {
	t.Helper()
	rb := &recordingBuilder{}
	e := New(append([]Option{WithBuilder(rb)}, opts...)...)
	t.Cleanup(e.Close)
	return e, rb
}

// points returns n points along a zigzag.
func points(n int) []ink.Point {
	pts := make([]ink.Point, n)
	for i := range pts {
		pts[i] = ink.Pt(float32(i), float32(i%2), 0)
	}
	return pts
}

// newDrawing returns an object with one layer holding frame 1.
func newDrawing() (*ink.Object, *ink.Layer, *ink.Frame) {
	d := ink.NewData()
	l := d.AddLayer("ink")
	f := l.AddFrame(1)
	return ink.NewObject("drawing", d), l, f
}

func testView(frame int) *View {
	return &View{
		Frame: frame,
		Size:  f32.Vec2{800, 600},
		Tools: ToolSettings{SculptAlpha: 0.75},
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

// callBatches returns the batches submitted to pass in order.
func callBatches(p *render.Pass) []*render.Batch {
	out := make([]*render.Batch, len(p.Calls()))
	for i, c := range p.Calls() {
		out[i] = c.Batch
	}
	return out
}
