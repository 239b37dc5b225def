package vision

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
)

// rowRamp кадр, в котором яркость равна номеру строки
func rowRamp(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Pix[y*img.Stride+x] = uint8(y)
		}
	}
	return img
}

func TestToPolar_Shape(t *testing.T) {
	band := entity.RadiusBand{Min: 72, Max: 217}
	raster, err := ToPolar(rowRamp(233, 233), image.Pt(0, 0), band, 90, 0.25)
	require.NoError(t, err)
	require.Equal(t, 145, raster.Rows)
	require.Equal(t, 360, raster.Cols)
	require.Len(t, raster.Pix, 145*360)
}

func TestToPolar_Sampling(t *testing.T) {
	band := entity.RadiusBand{Min: 10, Max: 60}
	raster, err := ToPolar(rowRamp(100, 100), image.Pt(0, 0), band, 90, 0.5)
	require.NoError(t, err)

	// alpha = 0: отсчёты идут вниз по столбцу x = 0
	for r := band.Min; r < band.Max; r++ {
		require.Equal(t, uint8(r), raster.At(r-band.Min, 0))
	}
	// alpha = 89.5: строка почти не меняется, y = int(cos*R)
	last := raster.Cols - 1
	require.Equal(t, uint8(0), raster.At(0, last))
}

func TestToPolar_Deterministic(t *testing.T) {
	band := entity.RadiusBand{Min: 5, Max: 40}
	roi := rowRamp(64, 64)
	a, err := ToPolar(roi, image.Pt(2, 3), band, 90, 1)
	require.NoError(t, err)
	b, err := ToPolar(roi, image.Pt(2, 3), band, 90, 1)
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("polar raster mismatch (-first +second):\n%s", diff)
	}
}

func TestToPolar_OutOfBounds(t *testing.T) {
	_, err := ToPolar(rowRamp(50, 50), image.Pt(0, 0), entity.RadiusBand{Min: 10, Max: 60}, 90, 1)
	require.ErrorIs(t, err, entity.ErrOutOfBounds)
}

func TestToPolar_InvalidParams(t *testing.T) {
	roi := rowRamp(50, 50)
	_, err := ToPolar(roi, image.Pt(0, 0), entity.RadiusBand{Min: 10, Max: 10}, 90, 1)
	require.ErrorIs(t, err, entity.ErrInvalidConfig)
	_, err = ToPolar(roi, image.Pt(0, 0), entity.RadiusBand{Min: 1, Max: 10}, 90, 0)
	require.ErrorIs(t, err, entity.ErrInvalidConfig)
	_, err = ToPolar(roi, image.Pt(0, 0), entity.RadiusBand{Min: 1, Max: 10}, 0, 1)
	require.ErrorIs(t, err, entity.ErrInvalidConfig)
}
