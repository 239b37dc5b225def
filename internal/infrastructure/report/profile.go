// Package report строит график радиального профиля дуги.
package report

import (
	"bytes"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"insert-inspector/internal/domain/entity"
	"insert-inspector/internal/domain/port"
)

var (
	colorPass         = mustHex("#2e9d4b")
	colorFail         = mustHex("#d03b3b")
	colorInconclusive = mustHex("#8a8a8a")
	colorBound        = mustHex("#3a5fcd")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("report: bad color %q: %v", s, err))
	}
	return c
}

// StatusColor цвет вердикта
func StatusColor(s entity.Status) colorful.Color {
	switch s {
	case entity.StatusPass:
		return colorPass
	case entity.StatusFail:
		return colorFail
	}
	return colorInconclusive
}

// PointColor цвет отсчёта: зелёный внутри допуска, к красному по мере
// выхода за границы (полностью красный в 5 px от границы).
func PointColor(r float64, b entity.Bounds) colorful.Color {
	var out float64
	switch {
	case r <= b.Min:
		out = b.Min - r
	case r >= b.Max:
		out = r - b.Max
	default:
		return colorPass
	}
	t := 0.2 + out/5
	if t >= 1 {
		return colorFail
	}
	return colorPass.BlendLab(colorFail, t).Clamped()
}

// ProfileRenderer рисует PNG с радиусами края и границами допуска
type ProfileRenderer struct {
	Width  vg.Length
	Height vg.Length
}

// NewProfileRenderer создаёт рендерер с размером по умолчанию
func NewProfileRenderer() *ProfileRenderer {
	return &ProfileRenderer{Width: 8 * vg.Inch, Height: 4 * vg.Inch}
}

// RenderProfile возвращает PNG
func (r *ProfileRenderer) RenderProfile(result *entity.InspectionResult) ([]byte, error) {
	if result == nil || len(result.RadialPositions) == 0 {
		return nil, entity.ErrInsufficientData
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s  mean=%.2f px  std=%.2f px", result.Status, result.Stats.Mean, result.Stats.StdDev)
	p.Title.TextStyle.Color = StatusColor(result.Status)
	p.X.Label.Text = "Отсчёт"
	p.Y.Label.Text = "Радиус (px)"

	pts := make(plotter.XYs, len(result.RadialPositions))
	for i, v := range result.RadialPositions {
		pts[i] = plotter.XY{X: float64(i), Y: float64(v)}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  PointColor(pts[i].Y, result.Bounds),
			Radius: vg.Points(1.5),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	last := float64(len(pts) - 1)
	if last == 0 {
		last = 1
	}
	hline := func(y float64, label string, dashed bool) error {
		l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: last, Y: y}})
		if err != nil {
			return err
		}
		l.Color = colorBound
		l.Width = vg.Points(1)
		if dashed {
			l.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
			l.Color = StatusColor(result.Status)
		}
		p.Add(l)
		p.Legend.Add(label, l)
		return nil
	}
	if result.Bounds.Max > result.Bounds.Min {
		if err := hline(result.Bounds.Min, "min", false); err != nil {
			return nil, err
		}
		if err := hline(result.Bounds.Max, "max", false); err != nil {
			return nil, err
		}
	}
	if err := hline(result.Stats.Mean, "mean", true); err != nil {
		return nil, err
	}
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	wt, err := p.WriterTo(r.Width, r.Height, "png")
	if err != nil {
		return nil, fmt.Errorf("render profile: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	return buf.Bytes(), nil
}

var _ port.ProfileRenderer = (*ProfileRenderer)(nil)
