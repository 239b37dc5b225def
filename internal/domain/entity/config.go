package entity

import "fmt"

// InspectionConfig параметры цикла инспекции
type InspectionConfig struct {
	ROI1       Region
	Direction1 Direction
	ROI2       Region
	Direction2 Direction

	PixelsPerMillimeter float64 // масштаб, px/мм
	NominalRadiusMM     float64 // номинальный радиус дуги, мм

	MinAcceptableRadiusPx float64
	MaxAcceptableRadiusPx float64
	MaxStdErrorPx         float64

	PolarRadiusBand     RadiusBand
	PolarAngleSweep     float64 // градусы
	PolarAngleIncrement float64 // градусы

	ArcMargin int // запас области дуги со стороны пересечения, px
}

// DefaultInspectionConfig возвращает параметры стенда: камера 2000x1500,
// 145 px/мм, радиус пластины 132 px.
func DefaultInspectionConfig() InspectionConfig {
	return InspectionConfig{
		ROI1:                  Region{X: 1000, Y: 625, Width: 800, Height: 200},
		Direction1:            FromBottom,
		ROI2:                  Region{X: 325, Y: 1075, Width: 300, Height: 300},
		Direction2:            FromLeft,
		PixelsPerMillimeter:   145,
		NominalRadiusMM:       0.91,
		MinAcceptableRadiusPx: 128,
		MaxAcceptableRadiusPx: 137,
		MaxStdErrorPx:         1.5,
		PolarRadiusBand:       RadiusBand{Min: 72, Max: 217},
		PolarAngleSweep:       90,
		PolarAngleIncrement:   0.25,
		ArcMargin:             100,
	}
}

// Bounds возвращает границы допуска
func (c InspectionConfig) Bounds() Bounds {
	return Bounds{
		Min:         c.MinAcceptableRadiusPx,
		Max:         c.MaxAcceptableRadiusPx,
		MaxStdError: c.MaxStdErrorPx,
	}
}

// Validate проверяет параметры до запуска конвейера
func (c InspectionConfig) Validate() error {
	if c.ROI1.Empty() || c.ROI2.Empty() {
		return fmt.Errorf("%w: empty region of interest", ErrInvalidConfig)
	}
	if err := c.Direction1.Validate(); err != nil {
		return fmt.Errorf("%w: direction1: %v", ErrInvalidConfig, err)
	}
	if err := c.Direction2.Validate(); err != nil {
		return fmt.Errorf("%w: direction2: %v", ErrInvalidConfig, err)
	}
	if c.PixelsPerMillimeter <= 0 || c.NominalRadiusMM <= 0 {
		return fmt.Errorf("%w: scale and nominal radius must be positive", ErrInvalidConfig)
	}
	if c.MinAcceptableRadiusPx >= c.MaxAcceptableRadiusPx {
		return fmt.Errorf("%w: min radius %.2f >= max radius %.2f", ErrInvalidConfig,
			c.MinAcceptableRadiusPx, c.MaxAcceptableRadiusPx)
	}
	if c.MaxStdErrorPx <= 0 {
		return fmt.Errorf("%w: max std error must be positive", ErrInvalidConfig)
	}
	if err := c.PolarRadiusBand.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.PolarAngleSweep <= 0 || c.PolarAngleIncrement <= 0 || c.PolarAngleIncrement > c.PolarAngleSweep {
		return fmt.Errorf("%w: invalid angle sweep %.2f / increment %.2f", ErrInvalidConfig,
			c.PolarAngleSweep, c.PolarAngleIncrement)
	}
	if c.ArcMargin < 0 {
		return fmt.Errorf("%w: negative arc margin", ErrInvalidConfig)
	}
	return nil
}
