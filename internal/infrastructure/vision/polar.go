package vision

import (
	"fmt"
	"image"
	"math"

	"insert-inspector/internal/domain/entity"
)

// ToPolar разворачивает область вокруг origin в полярную сетку: строка
// соответствует радиусу R из band, столбец углу alpha с шагом inc.
// Отсчёт берётся из ближайшего пикселя (x0 + sin(alpha)*R, y0 + cos(alpha)*R)
// с отбрасыванием дробной части. Любой отсчёт вне roi даёт ErrOutOfBounds.
func ToPolar(roi *image.Gray, origin image.Point, band entity.RadiusBand, sweep, inc float64) (*entity.PolarRaster, error) {
	if err := band.Validate(); err != nil {
		return nil, fmt.Errorf("polar: %w: %v", entity.ErrInvalidConfig, err)
	}
	if sweep <= 0 || inc <= 0 || inc > sweep {
		return nil, fmt.Errorf("polar: %w: sweep %.3f increment %.3f", entity.ErrInvalidConfig, sweep, inc)
	}

	raster := entity.NewPolarRaster(band, sweep, inc)
	b := roi.Bounds()
	for col := 0; col < raster.Cols; col++ {
		alpha := raster.Angle(col) * math.Pi / 180
		sin, cos := math.Sincos(alpha)
		for r := band.Min; r < band.Max; r++ {
			x := int(float64(origin.X) + sin*float64(r))
			y := int(float64(origin.Y) + cos*float64(r))
			p := image.Pt(x, y).Add(b.Min)
			if !p.In(b) {
				return nil, fmt.Errorf("polar: sample (%d,%d) at R=%d alpha=%.2f outside %v: %w",
					x, y, r, raster.Angle(col), b, entity.ErrOutOfBounds)
			}
			raster.Set(r-band.Min, col, roi.GrayAt(p.X, p.Y).Y)
		}
	}
	return raster, nil
}
