package ui

import (
	"github.com/weftworks/weft/engine/colors"
	"github.com/weftworks/weft/engine/gfx/nvg"
)

// Label is a plain text element.
type Label struct {
	Component
	text     string
	fontSize float32
	color    colors.Color
}

func NewLabel(text string) *Label {
	l := &Label{text: text, fontSize: 14, color: colors.Black}
	l.Init(l)
	return l
}

func (l *Label) Text() string { return l.text }

func (l *Label) SetText(text string) *Label {
	if l.text != text {
		l.text = text
		l.Repaint()
	}
	return l
}

func (l *Label) FontSize(size float32) *Label {
	l.fontSize = size
	l.Repaint()
	return l
}

func (l *Label) Color(c colors.Color) *Label {
	l.color = c
	l.Repaint()
	return l
}

func (l *Label) Paint(g nvg.Graphics) {
	g.SetFontSize(l.fontSize)
	g.SetFillColor(l.color)
	b := l.LocalBounds()
	g.Text(2, float32(b.H)/2+l.fontSize*0.35, l.text)
}
