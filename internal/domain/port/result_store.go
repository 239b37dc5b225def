package port

import (
	"context"

	"insert-inspector/internal/domain/entity"
)

// ResultStore интерфейс истории инспекций
type ResultStore interface {
	// Save сохраняет итог цикла
	Save(ctx context.Context, result *entity.InspectionResult) error

	// Recent возвращает последние итоги, новые первыми
	Recent(ctx context.Context, limit int) ([]entity.InspectionResult, error)
}

// ProfileRenderer интерфейс построения графика радиального профиля
type ProfileRenderer interface {
	// RenderProfile возвращает PNG с позициями края и границами допуска
	RenderProfile(result *entity.InspectionResult) ([]byte, error)
}
