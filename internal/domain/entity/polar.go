package entity

import (
	"fmt"
	"image"
	"math"
)

// RadiusBand диапазон радиусов [Min, Max) в пикселях
type RadiusBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Size возвращает число радиальных отсчётов
func (b RadiusBand) Size() int {
	return b.Max - b.Min
}

// Validate проверяет диапазон радиусов
func (b RadiusBand) Validate() error {
	if b.Min < 0 || b.Max <= b.Min {
		return fmt.Errorf("invalid radius band [%d, %d)", b.Min, b.Max)
	}
	return nil
}

// AngleBins возвращает число угловых отсчётов для развёртки sweep с шагом inc
func AngleBins(sweep, inc float64) int {
	return int(math.Ceil(sweep/inc - 1e-9))
}

// PolarRaster развёртка области в полярных координатах:
// строка соответствует радиусу (R - Band.Min), столбец углу (alpha / Increment).
type PolarRaster struct {
	Band      RadiusBand
	Sweep     float64
	Increment float64
	Rows      int
	Cols      int
	Pix       []uint8
}

// NewPolarRaster создаёт пустую развёртку фиксированного размера
func NewPolarRaster(band RadiusBand, sweep, inc float64) *PolarRaster {
	rows := band.Size()
	cols := AngleBins(sweep, inc)
	return &PolarRaster{
		Band:      band,
		Sweep:     sweep,
		Increment: inc,
		Rows:      rows,
		Cols:      cols,
		Pix:       make([]uint8, rows*cols),
	}
}

// At возвращает отсчёт по радиальному и угловому индексу
func (p *PolarRaster) At(row, col int) uint8 {
	return p.Pix[row*p.Cols+col]
}

// Set записывает отсчёт
func (p *PolarRaster) Set(row, col int, v uint8) {
	p.Pix[row*p.Cols+col] = v
}

// Angle возвращает угол столбца в градусах
func (p *PolarRaster) Angle(col int) float64 {
	return float64(col) * p.Increment
}

// Gray возвращает развёртку как изображение (общий буфер, без копирования)
func (p *PolarRaster) Gray() *image.Gray {
	return &image.Gray{
		Pix:    p.Pix,
		Stride: p.Cols,
		Rect:   image.Rect(0, 0, p.Cols, p.Rows),
	}
}
