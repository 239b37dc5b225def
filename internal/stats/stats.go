// Package stats считает статистику радиальных позиций края и выносит вердикт.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"insert-inspector/internal/domain/entity"
)

// Describe возвращает число точек, среднее, медиану, генеральную
// дисперсию и стандартное отклонение позиций.
func Describe(positions []int) (entity.DimensionStats, error) {
	if len(positions) == 0 {
		return entity.DimensionStats{}, entity.ErrInsufficientData
	}
	xs := make([]float64, len(positions))
	for i, p := range positions {
		xs[i] = float64(p)
	}
	mean, variance := stat.PopMeanVariance(xs, nil)

	sort.Float64s(xs)
	mid := len(xs) / 2
	median := xs[mid]
	if len(xs)%2 == 0 {
		median = (xs[mid-1] + xs[mid]) / 2
	}

	return entity.DimensionStats{
		Count:    len(xs),
		Mean:     mean,
		Median:   median,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
	}, nil
}

// Classify выносит вердикт: PASS, если среднее строго внутри (Min, Max)
// и стандартное отклонение меньше MaxStdError, иначе FAIL.
func Classify(positions []int, bounds entity.Bounds) (*entity.InspectionResult, error) {
	s, err := Describe(positions)
	if err != nil {
		return nil, err
	}
	status := entity.StatusFail
	if s.Mean > bounds.Min && s.Mean < bounds.Max && s.StdDev < bounds.MaxStdError {
		status = entity.StatusPass
	}
	return &entity.InspectionResult{
		Status:          status,
		Stats:           s,
		RadialPositions: append([]int(nil), positions...),
		Bounds:          bounds,
	}, nil
}
