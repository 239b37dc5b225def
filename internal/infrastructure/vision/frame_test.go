package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
	"insert-inspector/internal/testutil"
)

func TestCrop(t *testing.T) {
	frame := testutil.Flat(50, 40, 10)
	frame.SetGray(12, 7, color.Gray{Y: 99})

	roi, err := Crop(frame, entity.Region{X: 10, Y: 5, Width: 20, Height: 10})
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 20, 10), roi.Bounds())
	require.Equal(t, uint8(99), roi.GrayAt(2, 2).Y)
	require.Equal(t, uint8(10), roi.GrayAt(0, 0).Y)
}

func TestCrop_OutOfBounds(t *testing.T) {
	frame := testutil.Flat(50, 40, 10)
	for _, region := range []entity.Region{
		{X: -1, Y: 0, Width: 10, Height: 10},
		{X: 45, Y: 0, Width: 10, Height: 10},
		{X: 0, Y: 35, Width: 10, Height: 10},
		{X: 0, Y: 0, Width: 0, Height: 10},
	} {
		_, err := Crop(frame, region)
		require.ErrorIs(t, err, entity.ErrOutOfBounds, "%v", region)
	}
}

func TestRotate_MatchesRotatePoint(t *testing.T) {
	src := testutil.Flat(6, 4, 0)
	marked := image.Pt(1, 0)
	src.SetGray(marked.X, marked.Y, color.Gray{Y: 255})

	for _, rot := range []entity.Rotation{entity.Rotate0, entity.Rotate90, entity.Rotate180, entity.Rotate270} {
		dst, err := Rotate(src, rot)
		require.NoError(t, err)
		p := RotatePoint(marked, 6, 4, rot)
		require.Equal(t, uint8(255), dst.GrayAt(p.X, p.Y).Y, "rotation %d", rot)

		if rot == entity.Rotate90 || rot == entity.Rotate270 {
			require.Equal(t, image.Rect(0, 0, 4, 6), dst.Bounds())
		} else {
			require.Equal(t, image.Rect(0, 0, 6, 4), dst.Bounds())
		}
	}
}

func TestRotate_CounterClockwise(t *testing.T) {
	// правый верхний угол после поворота на 90° становится левым верхним
	require.Equal(t, image.Pt(0, 0), RotatePoint(image.Pt(5, 0), 6, 4, entity.Rotate90))
	require.Equal(t, image.Pt(0, 0), RotatePoint(image.Pt(5, 3), 6, 4, entity.Rotate180))
	require.Equal(t, image.Pt(0, 0), RotatePoint(image.Pt(0, 3), 6, 4, entity.Rotate270))
}

func TestRotate_Unsupported(t *testing.T) {
	_, err := Rotate(testutil.Flat(2, 2, 0), entity.Rotation(45))
	require.Error(t, err)
}

func TestToGray(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(1, 0, color.White)
	gray := ToGray(rgba)
	require.Equal(t, uint8(255), gray.GrayAt(1, 0).Y)
	require.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)

	g := testutil.Flat(2, 2, 5)
	require.Same(t, g, ToGray(g))
}
