// Package testutil строит синтетические кадры для тестов.
package testutil

import (
	"image"
	"image/color"
	"math"
)

const (
	Dark   uint8 = 30  // фон
	Bright uint8 = 200 // деталь
)

// Flat возвращает однотонный кадр
func Flat(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// HalfPlane возвращает кадр, разделённый прямой через (px, py) под углом
// angle (градусы, от оси X по часовой стрелке в координатах изображения).
// Пиксели слева от направления прямой светлые.
func HalfPlane(w, h int, px, py, angle float64) *image.Gray {
	img := Flat(w, h, Dark)
	rad := angle * math.Pi / 180
	vx, vy := math.Cos(rad), math.Sin(rad)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (float64(x)-px)*vy-(float64(y)-py)*vx > 0 {
				img.Pix[y*img.Stride+x] = Bright
			}
		}
	}
	return img
}

// RoundedCorner возвращает кадр w x h с деталью, занимающей область
// x >= corner.X, y >= corner.Y. Угол детали скруглён дугой радиуса radius
// с центром (corner.X+radius, corner.Y+radius).
func RoundedCorner(w, h int, corner image.Point, radius float64) *image.Gray {
	img := Flat(w, h, Dark)
	cx := float64(corner.X) + radius
	cy := float64(corner.Y) + radius
	for y := corner.Y; y < h; y++ {
		for x := corner.X; x < w; x++ {
			fx, fy := float64(x), float64(y)
			if fx < cx && fy < cy && math.Hypot(fx-cx, fy-cy) > radius {
				continue
			}
			img.Pix[y*img.Stride+x] = Bright
		}
	}
	return img
}

// Mirror возвращает копию кадра, отражённую по горизонтали и/или вертикали
func Mirror(src *image.Gray, horizontal, vertical bool) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		sy := y
		if vertical {
			sy = h - 1 - y
		}
		for x := 0; x < w; x++ {
			sx := x
			if horizontal {
				sx = w - 1 - x
			}
			dst.Pix[y*dst.Stride+x] = src.Pix[sy*src.Stride+sx]
		}
	}
	return dst
}

// Fill закрашивает прямоугольник кадра значением v
func Fill(img *image.Gray, rect image.Rectangle, v uint8) {
	rect = rect.Intersect(img.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
}
