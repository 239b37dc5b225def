//go:build gocv
// +build gocv

package vision

import (
	"gocv.io/x/gocv"

	"insert-inspector/internal/domain/entity"
)

// LineFitter аппроксимирует точки прямой через cv::fitLine (DIST_HUBER)
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

	pv := gocv.NewPointVectorFromPoints(points)
	defer pv.Close()

	line := gocv.NewMat()
	defer line.Close()
	gocv.FitLine(pv, &line, gocv.DistHuber, 0, 0.01, 0.05)

	return entity.Line{
		Vx: float64(line.GetFloatAt(0, 0)),
		Vy: float64(line.GetFloatAt(1, 0)),
		X:  float64(line.GetFloatAt(2, 0)),
		Y:  float64(line.GetFloatAt(3, 0)),
	}.Normalized(), nil
}
