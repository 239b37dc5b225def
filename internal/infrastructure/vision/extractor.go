//go:build !gocv
// +build !gocv

package vision

import (
	"image"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"insert-inspector/internal/domain/entity"
)

// Extractor ищет край в области кадра без OpenCV: отсечка по порогу,
// направленный фильтр, морфологическое открытие, Canny и поиск первого
// пикселя края вдоль направления.
type Extractor struct {
	Params Params
}

// NewExtractor создаёт экстрактор с заданными параметрами
func NewExtractor(params Params) *Extractor {
	return &Extractor{Params: params}
}

// ExtractEdgePoints возвращает первые точки края вдоль dir в координатах кадра
func (e *Extractor) ExtractEdgePoints(frame *image.Gray, region entity.Region, dir entity.Direction) entity.PointSet {
	if dir.Validate() != nil {
		return nil
	}
	rect := region.Rect().Intersect(frame.Bounds())
	if rect.Empty() {
		return nil
	}

	roi := fromNRGBA(imaging.Crop(frame, rect))
	thresholdToZero(roi, e.Params.Threshold)

	filtered := e.filter(roi, dir.Axis())
	opened := e.open(filtered)
	edges := canny(opened, e.Params.CannyLow, e.Params.CannyHigh)

	o := newOrientation(dir, rect.Dx(), rect.Dy())
	normalized := normalize(edges, o)
	return o.firstInRows(func(x, y int) uint8 {
		return normalized.Pix[y*normalized.Stride+x*4]
	}, rect.Min)
}

// filter применяет направленное ядро, значения насыщаются в [0, 255]
func (e *Extractor) filter(img *image.Gray, axis entity.Axis) *image.Gray {
	w, h := kernelShape(axis)
	k := convolution.NewKernel(w, h)
	for y, row := range Kernel(axis) {
		for x, v := range row {
			k.Matrix[y*w+x] = v
		}
	}
	out := convolution.Convolve(img, k, &convolution.Options{Bias: 0, Wrap: false, KeepAlpha: true})
	return rgbaToGray(out)
}

// open морфологическое открытие: эрозия и затем дилатация
func (e *Extractor) open(img *image.Gray) *image.Gray {
	radius := float64(e.Params.OpenSize / 2)
	if radius < 1 {
		return img
	}
	return rgbaToGray(effect.Dilate(effect.Erode(img, radius), radius))
}

// normalize приводит карту краёв к поиску слева направо
func normalize(edges *image.Gray, o orientation) *image.NRGBA {
	var out *image.NRGBA
	if o.rotated() {
		out = imaging.Rotate270(edges)
	} else {
		out = imaging.Clone(edges)
	}
	if o.flipped() {
		out = imaging.FlipH(out)
	}
	return out
}

func thresholdToZero(img *image.Gray, t uint8) {
	for i, v := range img.Pix {
		if v <= t {
			img.Pix[i] = 0
		}
	}
}

func rgbaToGray(src *image.RGBA) *image.Gray {
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
