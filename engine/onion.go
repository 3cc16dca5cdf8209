package engine

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/ink"
)

// drawOnionSkins draws the ghost frames around frame index i of l,
// previous frames first.
//
// A positive step draws every neighbour within step frame numbers, fading
// with distance. A zero step draws only the adjacent frame at a fixed low
// alpha. A negative step draws nothing in that direction.
func (p *populator) drawOnionSkins(l *ink.Layer, i int) {
	cur := l.Frames()[i]
	ghost := p.e.settings.GhostRGBA()

	custom := l.Flags&ink.LayerGhostPrevColor != 0
	color := ghost
	if custom {
		color = l.GhostPrevColor
	}
	switch {
	case l.GhostPrev > 0:
		for _, gf := range l.Before(i, l.GhostPrev) {
			a := OnionAlpha(1, cur.Number-gf.Number, l.GhostPrev)
			p.drawStrokes(l, gf, 1, color.WithAlpha(a), true, custom)
		}
	case l.GhostPrev == 0:
		if gf := l.Prev(i); gf != nil {
			p.drawStrokes(l, gf, 1, color.WithAlpha(1.0/onionPrevDivisor), true, custom)
		}
	}

	custom = l.Flags&ink.LayerGhostNextColor != 0
	color = ghost
	if custom {
		color = l.GhostNextColor
	}
	switch {
	case l.GhostNext > 0:
		for _, gf := range l.After(i, l.GhostNext) {
			a := OnionAlpha(1, gf.Number-cur.Number, l.GhostNext)
			p.drawStrokes(l, gf, 1, color.WithAlpha(a), true, custom)
		}
	case l.GhostNext == 0:
		if gf := l.Next(i); gf != nil {
			p.drawStrokes(l, gf, 1, color.WithAlpha(1.0/onionNextDivisor), true, custom)
		}
	}
}

// OnionAlpha returns the alpha of a ghost frame distance frame numbers
// away from the current frame for a positive step count.
func OnionAlpha(base float32, distance, step int) float32 {
	fac := 1 - float32(distance)/float32(step+1)
	return base * math32.Max(0, fac) * onionFalloff
}
