package entity

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNoEdgePoints в области не найдено ни одной точки края
	ErrNoEdgePoints = errors.New("no edge points")
	// ErrParallelLines опорные прямые параллельны, пересечения нет
	ErrParallelLines = errors.New("parallel lines")
	// ErrOutOfBounds координата отсчёта вне изображения
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrInsufficientData нет данных для статистики
	ErrInsufficientData = errors.New("insufficient data")
	// ErrInvalidConfig некорректные параметры инспекции
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind код ошибки для структурированной обработки
type ErrorKind string

const (
	KindNoEdgePoints     ErrorKind = "NO_EDGE_POINTS"
	KindParallelLines    ErrorKind = "PARALLEL_LINES"
	KindOutOfBounds      ErrorKind = "OUT_OF_BOUNDS"
	KindInsufficientData ErrorKind = "INSUFFICIENT_DATA"
	KindInvalidInput     ErrorKind = "INVALID_INPUT"
	KindCancelled        ErrorKind = "CANCELLED"
	KindInternal         ErrorKind = "INTERNAL"
)

// KindOf определяет код по цепочке ошибок
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrNoEdgePoints):
		return KindNoEdgePoints
	case errors.Is(err, ErrParallelLines):
		return KindParallelLines
	case errors.Is(err, ErrOutOfBounds):
		return KindOutOfBounds
	case errors.Is(err, ErrInsufficientData):
		return KindInsufficientData
	case errors.Is(err, ErrInvalidConfig):
		return KindInvalidInput
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCancelled
	}
	return KindInternal
}

// Stage этап конвейера инспекции
type Stage string

const (
	StageValidate   Stage = "validate"
	StageLine1      Stage = "line1"
	StageLine2      Stage = "line2"
	StageArcCenter  Stage = "arc_center"
	StageArcRegion  Stage = "arc_region"
	StagePolar      Stage = "polar"
	StageArcEdge    Stage = "arc_edge"
	StageStatistics Stage = "statistics"
)

// InspectionError ошибка этапа, прервавшая цикл инспекции
type InspectionError struct {
	Stage Stage
	Kind  ErrorKind
	Err   error
}

// NewInspectionError оборачивает ошибку этапа
func NewInspectionError(stage Stage, err error) *InspectionError {
	return &InspectionError{Stage: stage, Kind: KindOf(err), Err: err}
}

func (e *InspectionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}
