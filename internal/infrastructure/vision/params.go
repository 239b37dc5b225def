package vision

import "insert-inspector/internal/domain/entity"

// Params параметры предобработки перед поиском края
type Params struct {
	Threshold uint8   // отсечка: отсчёты не выше порога обнуляются
	OpenSize  int     // размер структурного элемента морфологического открытия
	CannyLow  float64 // нижний порог гистерезиса Canny
	CannyHigh float64 // верхний порог гистерезиса Canny
}

// DefaultParams возвращает параметры, подобранные на стенде
func DefaultParams() Params {
	return Params{
		Threshold: 150,
		OpenSize:  7,
		CannyLow:  30,
		CannyHigh: 100,
	}
}

// profile веса направленного фильтра поперёк края
var profile = [7]float64{-2, -1, 1, 6, 1, -1, -2}

// kernelShape размеры ядра (ширина x высота) для оси поиска
func kernelShape(axis entity.Axis) (w, h int) {
	if axis == entity.AxisVertical {
		return 7, 7
	}
	return 7, 5
}

// Kernel возвращает ядро направленного фильтра для оси поиска.
// Для вертикальной оси веса меняются по строкам (край горизонтальный),
// для горизонтальной по столбцам.
func Kernel(axis entity.Axis) [][]float64 {
	w, h := kernelShape(axis)
	k := make([][]float64, h)
	for y := 0; y < h; y++ {
		k[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			if axis == entity.AxisVertical {
				k[y][x] = profile[y]
			} else {
				k[y][x] = profile[x]
			}
		}
	}
	return k
}
