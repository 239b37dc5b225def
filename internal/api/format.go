package telegram

import (
	"fmt"
	"strings"

	"insert-inspector/internal/domain/entity"
)

// statusText вердикт для оператора
func statusText(s entity.Status) string {
	switch s {
	case entity.StatusPass:
		return "✅ ГОДНА"
	case entity.StatusFail:
		return "❌ БРАК"
	}
	return "⚠️ НЕ ОПРЕДЕЛЕНО"
}

// causeText причина незавершённой инспекции
func causeText(kind entity.ErrorKind) string {
	switch kind {
	case entity.KindNoEdgePoints:
		return "кромка не найдена, проверьте положение пластины и освещение"
	case entity.KindParallelLines:
		return "опорные кромки параллельны"
	case entity.KindOutOfBounds:
		return "дуга выходит за границы кадра"
	case entity.KindInsufficientData:
		return "недостаточно точек профиля"
	case entity.KindInvalidInput:
		return "некорректный кадр или параметры"
	case entity.KindCancelled:
		return "проверка прервана"
	}
	return "внутренняя ошибка"
}

// FormatResult текст отчёта по итогу инспекции
func FormatResult(res *entity.InspectionResult, score *float64) string {
	if res == nil {
		return statusText(entity.StatusInconclusive)
	}
	var b strings.Builder
	b.WriteString(statusText(res.Status))
	b.WriteString("\n")

	if res.Cause != nil {
		fmt.Fprintf(&b, "Причина: %s (этап %s)\n", causeText(res.Cause.Kind), res.Cause.Stage)
	} else {
		fmt.Fprintf(&b, "Радиус: %.2f px (медиана %.1f), σ = %.2f px\n",
			res.Stats.Mean, res.Stats.Median, res.Stats.StdDev)
		fmt.Fprintf(&b, "Допуск: %.0f…%.0f px, σ < %.2f px\n",
			res.Bounds.Min, res.Bounds.Max, res.Bounds.MaxStdError)
		fmt.Fprintf(&b, "Точек профиля: %d\n", res.Stats.Count)
	}
	if score != nil {
		fmt.Fprintf(&b, "Оценка нейросети: %.0f%%\n", *score*100)
	}
	fmt.Fprintf(&b, "Цикл %s, %d мс", shortID(res.CycleID), res.Elapsed.Milliseconds())
	return b.String()
}

// FormatOperatorStats счётчики оператора
func FormatOperatorStats(op *entity.Operator) string {
	return fmt.Sprintf("📊 Проверено: %d\n✅ Годных: %d\n❌ Брак: %d\n⚠️ Не определено: %d",
		op.Total(), op.Passed, op.Failed, op.Inconclusive)
}

// FormatHistory список последних проверок
func FormatHistory(results []entity.InspectionResult) string {
	if len(results) == 0 {
		return msgNoHistory
	}
	var b strings.Builder
	b.WriteString("🗂 Последние проверки:")
	for _, r := range results {
		fmt.Fprintf(&b, "\n%s %s", shortID(r.CycleID), statusText(r.Status))
		if r.Cause == nil {
			fmt.Fprintf(&b, " %.2f px", r.Stats.Mean)
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
