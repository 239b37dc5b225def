package entity

import "fmt"

// Quadrant положение центра дуги относительно точки пересечения прямых
type Quadrant int

const (
	QuadrantUpperLeft Quadrant = iota
	QuadrantUpperRight
	QuadrantLowerRight
	QuadrantLowerLeft
)

// QuadrantOf определяет квадрант центра относительно пересечения.
// При равенстве координат центр считается правее/ниже.
func QuadrantOf(center, intersection PointF) Quadrant {
	right := center.X >= intersection.X
	lower := center.Y >= intersection.Y
	switch {
	case !right && !lower:
		return QuadrantUpperLeft
	case right && !lower:
		return QuadrantUpperRight
	case right && lower:
		return QuadrantLowerRight
	default:
		return QuadrantLowerLeft
	}
}

// Rotation угол поворота против часовой стрелки, после которого центр
// дуги оказывается в левом верхнем углу вырезанной области.
func (q Quadrant) Rotation() Rotation {
	switch q {
	case QuadrantUpperRight:
		return Rotate90
	case QuadrantLowerRight:
		return Rotate180
	case QuadrantLowerLeft:
		return Rotate270
	default:
		return Rotate0
	}
}

func (q Quadrant) String() string {
	switch q {
	case QuadrantUpperLeft:
		return "upper-left"
	case QuadrantUpperRight:
		return "upper-right"
	case QuadrantLowerRight:
		return "lower-right"
	case QuadrantLowerLeft:
		return "lower-left"
	}
	return fmt.Sprintf("quadrant(%d)", int(q))
}

// Rotation поворот на кратный 90° угол, в градусах
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// ArcCenterResult результат поиска центра дуги
type ArcCenterResult struct {
	Center       PointF   // центр дуги
	Intersection PointF   // пересечение опорных прямых
	Quadrant     Quadrant // положение центра относительно пересечения
	Rotation     Rotation // поворот вырезанной области
	Region       Region   // область кадра с дугой
}
