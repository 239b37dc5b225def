package vision

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"insert-inspector/internal/domain/entity"
)

// ToGray приводит произвольное изображение к оттенкам серого.
// *image.Gray возвращается как есть.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	if n, ok := img.(*image.NRGBA); ok {
		return fromNRGBA(n)
	}
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// fromNRGBA берёт яркость из красного канала: imaging сохраняет серое
// изображение как NRGBA с равными каналами.
func fromNRGBA(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		row := src.Pix[y*src.Stride:]
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Dx(); x++ {
			out[x] = row[x*4]
		}
	}
	return dst
}

// Crop вырезает область кадра. Координаты результата начинаются с нуля.
func Crop(frame *image.Gray, region entity.Region) (*image.Gray, error) {
	if region.Empty() {
		return nil, fmt.Errorf("crop %v: empty region: %w", region, entity.ErrOutOfBounds)
	}
	rect := region.Rect()
	if !rect.In(frame.Bounds()) {
		return nil, fmt.Errorf("crop %v outside frame %v: %w", rect, frame.Bounds(), entity.ErrOutOfBounds)
	}
	return fromNRGBA(imaging.Crop(frame, rect)), nil
}

// Rotate поворачивает изображение против часовой стрелки на кратный 90° угол
func Rotate(img *image.Gray, rot entity.Rotation) (*image.Gray, error) {
	switch rot {
	case entity.Rotate0:
		out := image.NewGray(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
		draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
		return out, nil
	case entity.Rotate90:
		return fromNRGBA(imaging.Rotate90(img)), nil
	case entity.Rotate180:
		return fromNRGBA(imaging.Rotate180(img)), nil
	case entity.Rotate270:
		return fromNRGBA(imaging.Rotate270(img)), nil
	}
	return nil, fmt.Errorf("unsupported rotation %d", rot)
}

// RotatePoint переводит точку изображения w x h в координаты изображения,
// повёрнутого функцией Rotate.
func RotatePoint(p image.Point, w, h int, rot entity.Rotation) image.Point {
	switch rot {
	case entity.Rotate90:
		return image.Pt(p.Y, w-1-p.X)
	case entity.Rotate180:
		return image.Pt(w-1-p.X, h-1-p.Y)
	case entity.Rotate270:
		return image.Pt(h-1-p.Y, p.X)
	}
	return p
}
