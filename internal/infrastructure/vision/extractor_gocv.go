//go:build gocv
// +build gocv

package vision

import (
	"image"

	"gocv.io/x/gocv"

	"insert-inspector/internal/domain/entity"
)

// Extractor ищет край в области кадра средствами OpenCV
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

	src, err := gocv.ImageGrayToMatGray(frame)
	if err != nil {
		return nil
	}
	defer src.Close()

	view := src.Region(rect.Sub(frame.Bounds().Min))
	defer view.Close()

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(view, &thresh, float32(e.Params.Threshold), 255, gocv.ThresholdToZero)

	kernel := kernelMat(dir.Axis())
	defer kernel.Close()
	filtered := gocv.NewMat()
	defer filtered.Close()
	gocv.Filter2D(thresh, &filtered, gocv.MatType(-1), kernel, image.Pt(-1, -1), 0, gocv.BorderDefault)

	element := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(e.Params.OpenSize, e.Params.OpenSize))
	defer element.Close()
	opened := gocv.NewMat()
	defer opened.Close()
	gocv.MorphologyEx(filtered, &opened, gocv.MorphOpen, element)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(opened, &edges, float32(e.Params.CannyLow), float32(e.Params.CannyHigh))

	o := newOrientation(dir, rect.Dx(), rect.Dy())
	normalized := edges.Clone()
	defer func() { normalized.Close() }()
	if o.rotated() {
		rotated := gocv.NewMat()
		gocv.Rotate(normalized, &rotated, gocv.Rotate90Clockwise)
		normalized.Close()
		normalized = rotated
	}
	if o.flipped() {
		flipped := gocv.NewMat()
		gocv.Flip(normalized, &flipped, 1)
		normalized.Close()
		normalized = flipped
	}

	return o.firstInRows(func(x, y int) uint8 {
		return normalized.GetUCharAt(y, x)
	}, rect.Min)
}

func kernelMat(axis entity.Axis) gocv.Mat {
	w, h := kernelShape(axis)
	k := gocv.NewMatWithSize(h, w, gocv.MatTypeCV32F)
	for y, row := range Kernel(axis) {
		for x, v := range row {
			k.SetFloatAt(y, x, float32(v))
		}
	}
	return k
}
