package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
)

func TestOrientation_RoundTrip(t *testing.T) {
	dirs := []entity.Direction{entity.FromLeft, entity.FromRight, entity.FromBottom, entity.FromTop}
	for _, dir := range dirs {
		o := newOrientation(dir, 7, 4)
		w, h := o.size()
		for y := 0; y < 4; y++ {
			for x := 0; x < 7; x++ {
				p := image.Pt(x, y)
				q := o.forward(p)
				require.True(t, q.In(image.Rect(0, 0, w, h)), "%v: %v -> %v", dir, p, q)
				require.Equal(t, p, o.inverse(q), "%v", dir)
			}
		}
	}
}

func TestOrientation_ScanStartsAtSearchSide(t *testing.T) {
	// точка, с которой начинается поиск, переходит в начало первой строки
	cases := []struct {
		dir   entity.Direction
		start image.Point
	}{
		{entity.FromLeft, image.Pt(0, 0)},
		{entity.FromRight, image.Pt(6, 0)},
		{entity.FromBottom, image.Pt(0, 3)},
		{entity.FromTop, image.Pt(0, 0)},
	}
	for _, tc := range cases {
		o := newOrientation(tc.dir, 7, 4)
		require.Equal(t, image.Pt(0, 0), o.forward(tc.start), "%v", tc.dir)
	}
}

func TestOrientation_FirstInRows(t *testing.T) {
	// карта 5x3 с одной вертикальной линией краёв в столбце 2
	edges := image.NewGray(image.Rect(0, 0, 5, 3))
	for y := 0; y < 3; y++ {
		edges.Pix[y*edges.Stride+2] = 255
	}
	o := newOrientation(entity.FromLeft, 5, 3)
	points := o.firstInRows(func(x, y int) uint8 { return edges.GrayAt(x, y).Y }, image.Pt(100, 10))
	require.Equal(t, entity.PointSet{image.Pt(102, 10), image.Pt(102, 11), image.Pt(102, 12)}, points)
}
