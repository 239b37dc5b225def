// Package geometry находит центр дуги по двум опорным прямым.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"insert-inspector/internal/domain/entity"
)

// parallelEps порог определителя, ниже которого прямые считаются параллельными
const parallelEps = 1e-9

// Solver вычисляет центр дуги номинального радиуса, касающейся обеих прямых
type Solver struct {
	PixelsPerMM     float64
	NominalRadiusMM float64
	Margin          int // запас области со стороны пересечения, px
}

// NewSolver создаёт решатель по параметрам инспекции
func NewSolver(cfg entity.InspectionConfig) Solver {
	return Solver{
		PixelsPerMM:     cfg.PixelsPerMillimeter,
		NominalRadiusMM: cfg.NominalRadiusMM,
		Margin:          cfg.ArcMargin,
	}
}

// RadiusPx номинальный радиус в пикселях
func (s Solver) RadiusPx() float64 {
	return s.PixelsPerMM * s.NominalRadiusMM
}

// Intersect возвращает точку пересечения прямых. Система
// p1 + t*v1 = p2 + u*v2 решается относительно (t, u).
func Intersect(l1, l2 entity.Line) (entity.PointF, error) {
	a := mat.NewDense(2, 2, []float64{
		l1.Vx, -l2.Vx,
		l1.Vy, -l2.Vy,
	})
	if math.Abs(mat.Det(a)) < parallelEps {
		return entity.PointF{}, entity.ErrParallelLines
	}
	b := mat.NewVecDense(2, []float64{l2.X - l1.X, l2.Y - l1.Y})

	var tu mat.VecDense
	if err := tu.SolveVec(a, b); err != nil {
		return entity.PointF{}, fmt.Errorf("%w: %v", entity.ErrParallelLines, err)
	}
	t := tu.AtVec(0)
	return entity.PointF{X: l1.X + t*l1.Vx, Y: l1.Y + t*l1.Vy}, nil
}

// Candidates возвращает четыре возможных центра дуги радиуса r, касающейся
// обеих прямых, по одному в каждом из углов, образованных прямыми.
// Порядок знаков (s1, s2): (+,+), (-,+), (-,-), (+,-).
func Candidates(xs entity.PointF, l1, l2 entity.Line, r float64) [4]entity.PointF {
	u1 := l1.Normalized()
	u2 := l2.Normalized()
	signs := [4][2]float64{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

	var out [4]entity.PointF
	for i, s := range signs {
		bx := s[0]*u1.Vx + s[1]*u2.Vx
		by := s[0]*u1.Vy + s[1]*u2.Vy
		n := math.Hypot(bx, by)
		// половина угла между s1*u1 и s2*u2: |b| = 2*cos(phi/2)
		cosHalf := n / 2
		sinHalf := math.Sqrt(math.Max(0, 1-cosHalf*cosHalf))
		d := r / sinHalf
		out[i] = entity.PointF{X: xs.X + d*bx/n, Y: xs.Y + d*by/n}
	}
	return out
}

// Solve находит центр дуги, ближайший к центру кадра frameW x frameH,
// квадрант относительно пересечения, поворот и область кадра с дугой.
func (s Solver) Solve(l1, l2 entity.Line, frameW, frameH int) (entity.ArcCenterResult, error) {
	xs, err := Intersect(l1, l2)
	if err != nil {
		return entity.ArcCenterResult{}, err
	}

	frameCenter := entity.PointF{X: float64(frameW) / 2, Y: float64(frameH) / 2}
	candidates := Candidates(xs, l1, l2, s.RadiusPx())
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Dist(frameCenter) < best.Dist(frameCenter) {
			best = c
		}
	}

	q := entity.QuadrantOf(best, xs)
	return entity.ArcCenterResult{
		Center:       best,
		Intersection: xs,
		Quadrant:     q,
		Rotation:     q.Rotation(),
		Region:       s.arcRegion(best, xs),
	}, nil
}

// arcRegion строит область от пикселя центра до пересечения с запасом
// Margin со стороны пересечения. Пиксель центра входит в область.
func (s Solver) arcRegion(center, xs entity.PointF) entity.Region {
	x0, x1 := span(center.X, xs.X, s.Margin)
	y0, y1 := span(center.Y, xs.Y, s.Margin)
	return entity.Region{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// span возвращает полуинтервал [lo, hi) по одной оси
func span(c, xs float64, margin int) (lo, hi int) {
	ci := int(math.Round(c))
	xi := int(math.Round(xs))
	if c >= xs {
		return xi - margin, ci + 1
	}
	return ci, xi + margin
}
