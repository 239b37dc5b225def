//go:build !gocv
// +build !gocv

package vision

import (
	"image"
	"math"
)

// canny выделяет края: градиент Собеля (норма L1), подавление немаксимумов
// по четырём направлениям и гистерезис с 8-связностью. Возвращает карту
// краёв 0/255 того же размера.
func canny(img *image.Gray, low, high float64) *image.Gray {
	if low > high {
		low, high = high, low
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w < 3 || h < 3 {
		return out
	}

	px := func(x, y int) float64 {
		return float64(img.Pix[y*img.Stride+x])
	}

	mag := make([]float64, w*h)
	sector := make([]uint8, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := px(x+1, y-1) + 2*px(x+1, y) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x-1, y) - px(x-1, y+1)
			gy := px(x-1, y+1) + 2*px(x, y+1) + px(x+1, y+1) -
				px(x-1, y-1) - 2*px(x, y-1) - px(x+1, y-1)
			i := y*w + x
			mag[i] = math.Abs(gx) + math.Abs(gy)
			sector[i] = gradientSector(gx, gy)
		}
	}

	// соседи вдоль градиента: "до" и "после" для каждого сектора
	offsets := [4][2]image.Point{
		{{-1, 0}, {1, 0}},  // 0°
		{{-1, -1}, {1, 1}}, // 45°
		{{0, -1}, {0, 1}},  // 90°
		{{1, -1}, {-1, 1}}, // 135°
	}

	const (
		none = iota
		weak
		strong
	)
	class := make([]uint8, w*h)
	var stack []int
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			m := mag[i]
			if m <= low {
				continue
			}
			o := offsets[sector[i]]
			before := mag[(y+o[0].Y)*w+x+o[0].X]
			after := mag[(y+o[1].Y)*w+x+o[1].X]
			if !(m > before && m >= after) {
				continue
			}
			if m > high {
				class[i] = strong
				stack = append(stack, i)
			} else {
				class[i] = weak
			}
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out.Pix[(i/w)*out.Stride+i%w] = 255
		x, y := i%w, i/w
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				nx, ny := x+dx, y+dy
				if nx <= 0 || ny <= 0 || nx >= w-1 || ny >= h-1 {
					continue
				}
				j := ny*w + nx
				if class[j] == weak {
					class[j] = strong
					stack = append(stack, j)
				}
			}
		}
	}
	return out
}

// gradientSector квантует направление градиента в один из четырёх секторов
func gradientSector(gx, gy float64) uint8 {
	deg := math.Atan2(gy, gx) * 180 / math.Pi
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return 0
	case deg < 67.5:
		return 1
	case deg < 112.5:
		return 2
	default:
		return 3
	}
}
