package vision

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
)

func TestLineFitter_Empty(t *testing.T) {
	_, err := NewLineFitter().FitLine(nil)
	require.ErrorIs(t, err, entity.ErrNoEdgePoints)
}

func TestLineFitter_SinglePoint(t *testing.T) {
	line, err := NewLineFitter().FitLine(entity.PointSet{image.Pt(4, 7)})
	require.NoError(t, err)
	require.Equal(t, entity.Line{Vx: 1, Vy: 0, X: 4, Y: 7}, line)
}

func TestLineFitter_Collinear(t *testing.T) {
	var points entity.PointSet
	for x := 0; x < 100; x++ {
		points = append(points, image.Pt(x, 2*x+1))
	}

	line, err := NewLineFitter().FitLine(points)
	require.NoError(t, err)
	require.InDelta(t, math.Atan(2)*180/math.Pi, line.Angle(), 0.01)
	// опорная точка лежит на прямой
	require.InDelta(t, 2*line.X+1, line.Y, 0.01)
}

func TestLineFitter_RobustToOutliers(t *testing.T) {
	var points entity.PointSet
	for y := 0; y < 200; y++ {
		points = append(points, image.Pt(300, y))
	}
	points = append(points, image.Pt(380, 10), image.Pt(390, 100), image.Pt(210, 150))

	line, err := NewLineFitter().FitLine(points)
	require.NoError(t, err)
	require.InDelta(t, 90, line.Angle(), 0.5)
	require.InDelta(t, 300, line.X, 1)
}
