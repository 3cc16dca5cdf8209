// Command inkdemo populates render passes for a small animated drawing and
// reports what each pass submitted.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/engine"
	"github.com/gogpu/ink/render"
)

func main() {
	var (
		frames  = flag.Int("frames", 12, "number of animation frames")
		config  = flag.String("config", "", "TOML settings file")
		images  = flag.String("images", "", "directory of material images")
		texture = flag.String("texture", "", "image used as the ball fill texture")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	settings := engine.DefaultSettings()
	if *config != "" {
		s, err := engine.LoadSettings(*config)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = s
	}

	opts := []engine.Option{engine.WithSettings(settings)}
	if *images != "" {
		opts = append(opts, engine.WithImages(engine.DirImages(*images)))
	}
	e := engine.New(opts...)
	defer e.Close()

	ob := buildScene(*frames, *texture)
	st := engine.NewStorage(render.NewPass("ink"))
	view := &engine.View{
		Size:  f32.Vec2{800, 600},
		Tools: engine.ToolSettings{SculptAlpha: 1, Brush: &ink.Brush{Name: "pen", Thickness: 4}},
	}

	// Play the animation twice: the second loop replays cached batches
	// only for frames that did not change since the last pass.
	for loop := 0; loop < 2; loop++ {
		for n := 1; n <= *frames; n++ {
			view.Frame = n
			populate(e, ob, view, st)
		}
	}

	// Hold the last frame: clean passes reuse every batch.
	populate(e, ob, view, st)

	// Select everything and enter edit mode.
	for _, l := range ob.Data.Layers {
		for _, f := range l.Frames() {
			for _, s := range f.Strokes {
				s.Flags |= ink.StrokeSelect
			}
		}
	}
	ob.Data.Flags |= ink.DataEditMode
	populate(e, ob, view, st)

	// Edit a stroke, then draw a new one.
	ground := ob.Data.Layers[0].Frames()[0].Strokes[0]
	ground.Points[1].Y += 0.1
	e.Invalidate(ob.Data)
	ob.Data.Flags &^= ink.DataEditMode
	ob.Data.Buffer = &ink.Buffer{
		Points: []ink.BufferPoint{
			{X: 10, Y: 10, Pressure: 1},
			{X: 60, Y: 20, Pressure: 1},
			{X: 40, Y: 70, Pressure: 1},
		},
		Stroke:    ink.RGB(0.1, 0.1, 0.1),
		Fill:      ink.RGBA4(0.9, 0.8, 0.2, 1),
		FillStyle: ink.FillChecker,
	}
	view.SessionActive = true
	populate(e, ob, view, st)

	e.Release(ob.Data)
	log.Printf("Released %s after %d frames", ob.Name, *frames)

	// Populate independent copies concurrently.
	copies := []*ink.Object{buildScene(*frames, *texture), buildScene(*frames, *texture)}
	copies[1].Matrix = ink.Translation(2, 0, 0)
	sts, err := e.PopulateAll(context.Background(), copies, view)
	if err != nil {
		log.Fatalf("Failed to populate copies: %v", err)
	}
	for i, st := range sts {
		log.Printf("copy %d: %d calls", i, len(st.Pass().Calls()))
		e.Release(copies[i].Data)
	}
}

// populate runs one pass on a fresh draw list and prints its summary.
func populate(e *engine.Engine, ob *ink.Object, view *engine.View, st *engine.Storage) {
	st.Reset()
	e.Populate(ob, view, st)

	s := ob.Data.Cache.Stats()
	log.Printf("frame %2d: %2d calls, %d groups, %d materials, %d slots (cap %d), %d built, %d reused",
		view.Frame, len(st.Pass().Calls()), len(st.Pass().Groups()), st.Registry().Len(),
		s.Cursor, s.Slots, s.Builds, s.Reuses)
}

// buildScene creates a ground line and a ball bouncing over frames
// 1 to n with onion skinning.
func buildScene(n int, texture string) *ink.Object {
	d := ink.NewData()

	ground := d.AddLayer("ground")
	earth := ink.NewMaterial("earth", ink.RGB(0.3, 0.2, 0.1), ink.Transparent)
	ground.AddFrame(1).AddStroke(ink.NewStroke(earth, 3, ink.Pt(-1, -0.5, 0), ink.Pt(1, -0.5, 0)))

	ball := d.AddLayer("ball")
	ball.Flags |= ink.LayerOnionSkin | ink.LayerGhostNextColor
	ball.GhostPrev, ball.GhostNext = 2, 1
	ball.GhostNextColor = ink.RGB(0.2, 0.8, 0.2)

	rubber := ink.NewMaterial("rubber", ink.RGB(0.6, 0, 0), ink.RGBA4(1, 0.2, 0.2, 0.9))
	rubber.FillStyle = ink.FillRadial
	rubber.Secondary = ink.RGB(1, 1, 1)
	if texture != "" {
		rubber.Image = texture
		rubber.Flags |= ink.MaterialTextureMix
	}
	dot := ink.NewMaterial("dot", ink.Black, ink.Transparent)

	for i := 1; i <= n; i++ {
		t := float32(i-1) / float32(max(n-1, 1))
		x := -0.8 + 1.6*t
		y := -0.4 + 0.8*math32.Abs(math32.Sin(t*2*math32.Pi))

		f := ball.AddFrame(i)
		f.AddStroke(circle(rubber, x, y, 0.1, 24))
		f.AddStroke(ink.NewStroke(dot, 6, ink.Pt(x, y, 0)))
	}
	return ink.NewObject("bounce", d)
}

// circle returns a closed stroke of n points around (cx, cy).
func circle(m *ink.Material, cx, cy, r float32, n int) *ink.Stroke {
	pts := make([]ink.Point, n)
	for i := range pts {
		a := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = ink.Pt(cx+r*math32.Cos(a), cy+r*math32.Sin(a), 0)
	}
	s := ink.NewStroke(m, 2, pts...)
	s.Flags |= ink.StrokeCyclic
	return s
}
