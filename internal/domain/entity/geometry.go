package entity

import (
	"fmt"
	"image"
	"math"
)

// Region прямоугольная область кадра
type Region struct {
	X      int `json:"x"`      // координата X левого верхнего угла
	Y      int `json:"y"`      // координата Y левого верхнего угла
	Width  int `json:"width"`  // ширина области в пикселях
	Height int `json:"height"` // высота области в пикселях
}

// Rect возвращает область как image.Rectangle
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Center возвращает координаты центра области
func (r Region) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Empty сообщает, что область не содержит ни одного пикселя
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// RegionFromRect строит Region из image.Rectangle
func RegionFromRect(rect image.Rectangle) Region {
	return Region{X: rect.Min.X, Y: rect.Min.Y, Width: rect.Dx(), Height: rect.Dy()}
}

// Axis ось, вдоль которой ищется край
type Axis int

const (
	AxisHorizontal Axis = iota // поиск слева/справа, край примерно вертикальный
	AxisVertical               // поиск сверху/снизу, край примерно горизонтальный
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	}
	return fmt.Sprintf("axis(%d)", int(a))
}

// Direction направление поиска края. Ненулевой ровно один компонент.
type Direction struct {
	X int
	Y int
}

var (
	FromLeft   = Direction{X: 1}  // первый край слева в каждой строке
	FromRight  = Direction{X: -1} // первый край справа в каждой строке
	FromBottom = Direction{Y: 1}  // первый край снизу в каждом столбце
	FromTop    = Direction{Y: -1} // первый край сверху в каждом столбце
)

// Validate проверяет, что направление одно из четырёх допустимых
func (d Direction) Validate() error {
	switch d {
	case FromLeft, FromRight, FromBottom, FromTop:
		return nil
	}
	return fmt.Errorf("invalid direction (%d,%d)", d.X, d.Y)
}

// Axis возвращает ось поиска
func (d Direction) Axis() Axis {
	if d.Y != 0 {
		return AxisVertical
	}
	return AxisHorizontal
}

func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.X, d.Y)
}

// PointSet точки края в координатах кадра
type PointSet []image.Point

// PointF точка с вещественными координатами
type PointF struct {
	X float64
	Y float64
}

// Dist возвращает евклидово расстояние до другой точки
func (p PointF) Dist(q PointF) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Line прямая: единичный направляющий вектор и точка на прямой
type Line struct {
	Vx float64
	Vy float64
	X  float64
	Y  float64
}

// Point возвращает опорную точку прямой
func (l Line) Point() PointF {
	return PointF{X: l.X, Y: l.Y}
}

// Angle возвращает угол направления в градусах, приведённый к [0, 180)
func (l Line) Angle() float64 {
	deg := math.Atan2(l.Vy, l.Vx) * 180 / math.Pi
	for deg < 0 {
		deg += 180
	}
	for deg >= 180 {
		deg -= 180
	}
	return deg
}

// Normalized возвращает прямую с единичным направляющим вектором
func (l Line) Normalized() Line {
	n := math.Hypot(l.Vx, l.Vy)
	if n == 0 {
		return l
	}
	l.Vx /= n
	l.Vy /= n
	return l
}
