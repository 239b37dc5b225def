package port

import (
	"context"
	"image"
)

// Classifier внешний классификатор (нейросеть), его оценка только прикладывается к результату
type Classifier interface {
	// Classify возвращает вероятность того, что деталь годная
	Classify(ctx context.Context, frame *image.Gray) (float64, error)
}
