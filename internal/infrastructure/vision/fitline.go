//go:build !gocv
// +build !gocv

package vision

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"insert-inspector/internal/domain/entity"
)

// Параметры M-оценки Хьюбера
const (
	huberC        = 1.345
	fitRadiusEps  = 0.01 // допуск сходимости по положению, px
	fitAngleEps   = 0.05 // допуск сходимости по направлению
	fitIterations = 30
)

// LineFitter робастно аппроксимирует точки прямой методом
// итеративно перевзвешенных наименьших квадратов с весами Хьюбера.
type LineFitter struct{}

// NewLineFitter создаёт аппроксиматор
func NewLineFitter() *LineFitter {
	return &LineFitter{}
}

// FitLine возвращает прямую с единичным направляющим вектором
func (f *LineFitter) FitLine(points entity.PointSet) (entity.Line, error) {
	if len(points) == 0 {
		return entity.Line{}, entity.ErrNoEdgePoints
	}
	if len(points) == 1 {
		return entity.Line{Vx: 1, Vy: 0, X: float64(points[0].X), Y: float64(points[0].Y)}, nil
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	weights := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.X)
		ys[i] = float64(p.Y)
		weights[i] = 1
	}

	line, err := weightedFit(xs, ys, weights)
	if err != nil {
		return entity.Line{}, err
	}
	for iter := 0; iter < fitIterations; iter++ {
		for i := range xs {
			d := math.Abs((xs[i]-line.X)*line.Vy - (ys[i]-line.Y)*line.Vx)
			if d <= huberC {
				weights[i] = 1
			} else {
				weights[i] = huberC / d
			}
		}
		next, err := weightedFit(xs, ys, weights)
		if err != nil {
			return entity.Line{}, err
		}
		// направление определено с точностью до знака
		dot := math.Abs(next.Vx*line.Vx + next.Vy*line.Vy)
		moved := math.Hypot(next.X-line.X, next.Y-line.Y)
		line = next
		if 1-dot < fitAngleEps*fitAngleEps && moved < fitRadiusEps {
			break
		}
	}
	return line, nil
}

// weightedFit прямая через взвешенный центр масс вдоль главного
// собственного вектора матрицы рассеяния
func weightedFit(xs, ys, weights []float64) (entity.Line, error) {
	mx := stat.Mean(xs, weights)
	my := stat.Mean(ys, weights)

	var sxx, sxy, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxx += weights[i] * dx * dx
		sxy += weights[i] * dx * dy
		syy += weights[i] * dy * dy
	}

	var eig mat.EigenSym
	if !eig.Factorize(mat.NewSymDense(2, []float64{sxx, sxy, sxy, syy}), true) {
		return entity.Line{}, fmt.Errorf("fit line: eigen decomposition failed")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	// собственные значения по возрастанию, главный вектор последний
	line := entity.Line{Vx: vecs.At(0, 1), Vy: vecs.At(1, 1), X: mx, Y: my}
	return line.Normalized(), nil
}
