package entity

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionCenter(t *testing.T) {
	r := Region{X: 10, Y: 20, Width: 8, Height: 6}
	x, y := r.Center()
	require.Equal(t, 14, x)
	require.Equal(t, 23, y)
	require.Equal(t, image.Rect(10, 20, 18, 26), r.Rect())
	require.Equal(t, r, RegionFromRect(r.Rect()))
}

func TestDirection_ValidateAndAxis(t *testing.T) {
	tests := []struct {
		dir  Direction
		axis Axis
	}{
		{FromLeft, AxisHorizontal},
		{FromRight, AxisHorizontal},
		{FromBottom, AxisVertical},
		{FromTop, AxisVertical},
	}
	for _, tt := range tests {
		require.NoError(t, tt.dir.Validate())
		require.Equal(t, tt.axis, tt.dir.Axis())
	}

	require.Error(t, Direction{}.Validate())
	require.Error(t, Direction{X: 1, Y: 1}.Validate())
	require.Error(t, Direction{X: 2}.Validate())
}

func TestLine_AngleAndNormalized(t *testing.T) {
	l := Line{Vx: 3, Vy: 4}.Normalized()
	require.InDelta(t, 1.0, math.Hypot(l.Vx, l.Vy), 1e-12)

	require.InDelta(t, 45.0, Line{Vx: 1, Vy: 1}.Angle(), 1e-9)
	require.InDelta(t, 45.0, Line{Vx: -1, Vy: -1}.Angle(), 1e-9)
	require.InDelta(t, 0.0, Line{Vx: -1, Vy: 0}.Angle(), 1e-9)
	require.InDelta(t, 90.0, Line{Vx: 0, Vy: -1}.Angle(), 1e-9)
}

func TestQuadrantRotation(t *testing.T) {
	xs := PointF{X: 100, Y: 100}
	tests := []struct {
		name   string
		center PointF
		want   Quadrant
		rot    Rotation
	}{
		{"upper-left", PointF{X: 50, Y: 50}, QuadrantUpperLeft, Rotate0},
		{"upper-right", PointF{X: 150, Y: 50}, QuadrantUpperRight, Rotate90},
		{"lower-right", PointF{X: 150, Y: 150}, QuadrantLowerRight, Rotate180},
		{"lower-left", PointF{X: 50, Y: 150}, QuadrantLowerLeft, Rotate270},
		{"tie goes right and lower", PointF{X: 100, Y: 100}, QuadrantLowerRight, Rotate180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuadrantOf(tt.center, xs)
			require.Equal(t, tt.want, q)
			require.Equal(t, tt.rot, q.Rotation())
		})
	}
}

func TestPolarRaster_FixedSize(t *testing.T) {
	p := NewPolarRaster(RadiusBand{Min: 10, Max: 30}, 90, 0.25)
	require.Equal(t, 20, p.Rows)
	require.Equal(t, 360, p.Cols)
	require.Len(t, p.Pix, 20*360)

	p.Set(3, 7, 200)
	require.Equal(t, uint8(200), p.At(3, 7))
	require.Equal(t, uint8(200), p.Gray().GrayAt(7, 3).Y)
	require.InDelta(t, 1.75, p.Angle(7), 1e-12)
}
