package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
)

func TestFormatResult_Pass(t *testing.T) {
	score := 0.97
	res := &entity.InspectionResult{
		CycleID: "0123456789abcdef",
		Status:  entity.StatusPass,
		Stats:   entity.DimensionStats{Count: 358, Mean: 130.87, Median: 131, StdDev: 0.34},
		Bounds:  entity.Bounds{Min: 128, Max: 137, MaxStdError: 1.5},
		Elapsed: 85 * time.Millisecond,
	}

	text := FormatResult(res, &score)
	require.Contains(t, text, "ГОДНА")
	require.Contains(t, text, "130.87 px")
	require.Contains(t, text, "Точек профиля: 358")
	require.Contains(t, text, "97%")
	require.Contains(t, text, "Цикл 01234567, 85 мс")
}

func TestFormatResult_Inconclusive(t *testing.T) {
	res := entity.Inconclusive(entity.StageLine2, entity.ErrNoEdgePoints)
	text := FormatResult(res, nil)
	require.Contains(t, text, "НЕ ОПРЕДЕЛЕНО")
	require.Contains(t, text, "кромка не найдена")
	require.Contains(t, text, "line2")
	require.NotContains(t, text, "нейросети")
}

func TestFormatHistory(t *testing.T) {
	require.Equal(t, msgNoHistory, FormatHistory(nil))

	text := FormatHistory([]entity.InspectionResult{
		{CycleID: "aaaaaaaa-1", Status: entity.StatusFail, Stats: entity.DimensionStats{Mean: 125.57}},
		*entity.Inconclusive(entity.StageArcCenter, entity.ErrParallelLines),
	})
	require.Contains(t, text, "aaaaaaaa ❌ БРАК 125.57 px")
	require.Contains(t, text, "НЕ ОПРЕДЕЛЕНО")
}

func TestFormatOperatorStats(t *testing.T) {
	op := entity.NewOperator(1, 1)
	op.Record(&entity.InspectionResult{Status: entity.StatusPass})
	op.Record(&entity.InspectionResult{Status: entity.StatusFail})
	text := FormatOperatorStats(op)
	require.Contains(t, text, "Проверено: 2")
	require.Contains(t, text, "Годных: 1")
}
