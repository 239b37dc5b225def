package port

import (
	"image"

	"insert-inspector/internal/domain/entity"
)

// EdgeExtractor интерфейс поиска точек края
type EdgeExtractor interface {
	// ExtractEdgePoints возвращает первые точки края вдоль направления поиска
	// в координатах кадра. Пустой набор означает, что край не найден.
	ExtractEdgePoints(frame *image.Gray, region entity.Region, dir entity.Direction) entity.PointSet
}

// LineFitter интерфейс робастной аппроксимации прямой
type LineFitter interface {
	// FitLine аппроксимирует точки прямой, entity.ErrNoEdgePoints для пустого набора
	FitLine(points entity.PointSet) (entity.Line, error)
}
