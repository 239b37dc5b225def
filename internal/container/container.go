package container

import (
	app "insert-inspector/internal/application"
	"insert-inspector/internal/domain/entity"
	"insert-inspector/internal/domain/port"
	"insert-inspector/internal/infrastructure/vision"
	"insert-inspector/internal/logging"
)

type Container struct {
	OperatorService   *app.OperatorService
	InspectionService *app.InspectionService
}

// New собирает сервисы приложения. store, renderer и classifier могут быть nil.
func New(
	cfg entity.InspectionConfig,
	operatorRepo port.OperatorRepository,
	store port.ResultStore,
	renderer port.ProfileRenderer,
	classifier port.Classifier,
	log *logging.Logger,
) *Container {
	operatorService := app.NewOperatorService(operatorRepo)
	inspectionService := app.NewInspectionService(
		cfg,
		vision.NewExtractor(vision.DefaultParams()),
		vision.NewLineFitter(),
		store,
		renderer,
		classifier,
		log,
	)

	return &Container{
		OperatorService:   operatorService,
		InspectionService: inspectionService,
	}
}
