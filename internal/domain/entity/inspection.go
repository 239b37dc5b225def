package entity

import "time"

// Status итог инспекции
type Status string

const (
	StatusPass         Status = "PASS"         // размер в допуске
	StatusFail         Status = "FAIL"         // размер вне допуска
	StatusInconclusive Status = "INCONCLUSIVE" // цикл прерван ошибкой этапа
)

// Bounds границы допуска радиуса, в пикселях
type Bounds struct {
	Min         float64
	Max         float64
	MaxStdError float64
}

// DimensionStats статистика радиальных позиций края
type DimensionStats struct {
	Count    int     // число точек
	Mean     float64 // среднее
	Median   float64 // медиана
	Variance float64 // дисперсия (генеральная)
	StdDev   float64 // стандартное отклонение
}

// InspectionResult хранит итог одного цикла инспекции.
type InspectionResult struct {
	CycleID         string           // идентификатор цикла
	Status          Status           // итог
	Stats           DimensionStats   // статистика, по которой принято решение
	Cause           *InspectionError // причина INCONCLUSIVE
	Line1           *Line            // первая опорная прямая
	Line2           *Line            // вторая опорная прямая
	Arc             *ArcCenterResult // найденный центр дуги
	RadialPositions []int            // радиусы края по углам, в пикселях
	Bounds          Bounds           // применённые границы допуска
	Elapsed         time.Duration    // длительность цикла
}

// Passed сообщает, что деталь в допуске
func (r *InspectionResult) Passed() bool {
	return r != nil && r.Status == StatusPass
}

// Inconclusive возвращает результат цикла, прерванного ошибкой этапа
func Inconclusive(stage Stage, err error) *InspectionResult {
	return &InspectionResult{
		Status: StatusInconclusive,
		Cause:  NewInspectionError(stage, err),
	}
}
