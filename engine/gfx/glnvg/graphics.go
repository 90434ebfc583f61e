package glnvg

import (
	"github.com/shibukawa/nanovgo"

	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/geom"
)

// graphics adapts the nanovgo drawing API to nvg.Graphics.
type graphics struct {
	ctx *nanovgo.Context
	r   *Renderer
}

func nvgColor(c colors.Color) nanovgo.Color {
	return nanovgo.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func (g *graphics) Save() { g.ctx.Save() }
func (g *graphics) Restore() { g.ctx.Restore() }

func (g *graphics) Translate(x, y float32) { g.ctx.Translate(x, y) }
func (g *graphics) Scale(x, y float32) { g.ctx.Scale(x, y) }

func (g *graphics) Scissor(x, y, w, h float32) { g.ctx.Scissor(x, y, w, h) }
func (g *graphics) IntersectScissor(x, y, w, h float32) { g.ctx.IntersectScissor(x, y, w, h) }
func (g *graphics) ResetScissor() { g.ctx.ResetScissor() }
func (g *graphics) SetGlobalAlpha(a float32) { g.ctx.SetGlobalAlpha(a) }

func (g *graphics) BeginPath() { g.ctx.BeginPath() }
func (g *graphics) MoveTo(x, y float32) { g.ctx.MoveTo(x, y) }
func (g *graphics) LineTo(x, y float32) { g.ctx.LineTo(x, y) }
func (g *graphics) BezierTo(c1x, c1y, c2x, c2y, x, y float32) { g.ctx.BezierTo(c1x, c1y, c2x, c2y, x, y) }
func (g *graphics) ClosePath() { g.ctx.ClosePath() }
func (g *graphics) Rect(x, y, w, h float32) { g.ctx.Rect(x, y, w, h) }
func (g *graphics) RoundedRect(x, y, w, h, r float32) { g.ctx.RoundedRect(x, y, w, h, r) }
func (g *graphics) Circle(cx, cy, r float32) { g.ctx.Circle(cx, cy, r) }

func (g *graphics) SetFillColor(c colors.Color) { g.ctx.SetFillColor(nvgColor(c)) }
func (g *graphics) SetStrokeColor(c colors.Color) { g.ctx.SetStrokeColor(nvgColor(c)) }
func (g *graphics) SetStrokeWidth(w float32) { g.ctx.SetStrokeWidth(w) }
func (g *graphics) Fill() { g.ctx.Fill() }
func (g *graphics) Stroke() { g.ctx.Stroke() }

func (g *graphics) FillImage(id int, dst geom.FRect, alpha float32) {
	if id == 0 {
		return
	}
	paint := nanovgo.ImagePattern(dst.X, dst.Y, dst.W, dst.H, 0, id, alpha)
	g.ctx.BeginPath()
	g.ctx.Rect(dst.X, dst.Y, dst.W, dst.H)
	g.ctx.SetFillPaint(paint)
	g.ctx.Fill()
}

func (g *graphics) FillImageAlpha(id int, dst geom.FRect, c colors.Color) {
	if id == 0 {
		return
	}
	g.r.retint(id, c)
	g.FillImage(id, dst, 1)
}

func (g *graphics) SetFontSize(size float32) { g.ctx.SetFontSize(size) }

func (g *graphics) Text(x, y float32, s string) float32 {
	return g.ctx.Text(x, y, s)
}

func (g *graphics) TextBounds(s string) (w, h float32) {
	adv, b := g.ctx.TextBounds(0, 0, s)
	if len(b) >= 4 {
		return adv, b[3] - b[1]
	}
	return adv, 0
}
