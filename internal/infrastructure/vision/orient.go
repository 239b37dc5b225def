package vision

import (
	"image"

	"insert-inspector/internal/domain/entity"
)

// orientation приводит поиск в любом направлении к поиску первого
// ненулевого пикселя слева в каждой строке:
//   - FromLeft: без изменений;
//   - FromRight: отражение по горизонтали;
//   - FromBottom: поворот на 90° по часовой стрелке;
//   - FromTop: поворот на 90° по часовой стрелке и отражение.
type orientation struct {
	dir entity.Direction
	w   int // ширина исходной карты краёв
	h   int // высота исходной карты краёв
}

func newOrientation(dir entity.Direction, w, h int) orientation {
	return orientation{dir: dir, w: w, h: h}
}

// rotated сообщает, что карта краёв поворачивается
func (o orientation) rotated() bool {
	return o.dir.Y != 0
}

// flipped сообщает, что карта краёв (после поворота) отражается
func (o orientation) flipped() bool {
	return o.dir.X == -1 || o.dir.Y == -1
}

// size возвращает размер приведённой карты
func (o orientation) size() (w, h int) {
	if o.rotated() {
		return o.h, o.w
	}
	return o.w, o.h
}

// forward переводит точку исходной карты в приведённую
func (o orientation) forward(p image.Point) image.Point {
	if o.rotated() {
		// поворот по часовой: (x, y) -> (h-1-y, x)
		p = image.Pt(o.h-1-p.Y, p.X)
	}
	if o.flipped() {
		w, _ := o.size()
		p.X = w - 1 - p.X
	}
	return p
}

// inverse переводит точку приведённой карты обратно в исходную
func (o orientation) inverse(p image.Point) image.Point {
	if o.flipped() {
		w, _ := o.size()
		p.X = w - 1 - p.X
	}
	if o.rotated() {
		p = image.Pt(p.Y, o.h-1-p.X)
	}
	return p
}

// firstInRows находит первый ненулевой пиксель каждой строки приведённой
// карты, возвращает точки в координатах кадра.
func (o orientation) firstInRows(at func(x, y int) uint8, offset image.Point) entity.PointSet {
	w, h := o.size()
	var pts entity.PointSet
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if at(x, y) == 0 {
				continue
			}
			pts = append(pts, o.inverse(image.Pt(x, y)).Add(offset))
			break
		}
	}
	return pts
}
