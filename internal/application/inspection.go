package app

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"insert-inspector/internal/domain/entity"
	"insert-inspector/internal/domain/port"
	"insert-inspector/internal/geometry"
	"insert-inspector/internal/infrastructure/vision"
	"insert-inspector/internal/logging"
	"insert-inspector/internal/stats"
)

// InspectionService выполняет цикл инспекции дуги пластины
type InspectionService struct {
	cfg        entity.InspectionConfig
	extractor  port.EdgeExtractor
	fitter     port.LineFitter
	store      port.ResultStore
	renderer   port.ProfileRenderer
	classifier port.Classifier
	log        *logging.Logger
}

// InspectionOutput содержит итог цикла, график профиля и оценку классификатора.
type InspectionOutput struct {
	Result  *entity.InspectionResult
	Profile []byte   // PNG, пустой если профиль не построен
	Score   *float64 // оценка внешнего классификатора, если он подключён
}

// NewInspectionService создаёт сервис. store, renderer и classifier
// необязательны и могут быть nil.
func NewInspectionService(
	cfg entity.InspectionConfig,
	extractor port.EdgeExtractor,
	fitter port.LineFitter,
	store port.ResultStore,
	renderer port.ProfileRenderer,
	classifier port.Classifier,
	log *logging.Logger,
) *InspectionService {
	if log == nil {
		log = logging.Nop()
	}
	return &InspectionService{
		cfg:        cfg,
		extractor:  extractor,
		fitter:     fitter,
		store:      store,
		renderer:   renderer,
		classifier: classifier,
		log:        log,
	}
}

// Config возвращает параметры, с которыми работает Run
func (s *InspectionService) Config() entity.InspectionConfig {
	return s.cfg
}

// Inspect выполняет один цикл инспекции кадра. Результат возвращается
// всегда: ошибка любого этапа даёт INCONCLUSIVE с причиной.
func (s *InspectionService) Inspect(ctx context.Context, frame *image.Gray, cfg entity.InspectionConfig) *entity.InspectionResult {
	start := time.Now()
	cycleID := uuid.NewString()

	res := s.inspect(ctx, cycleID, frame, cfg)
	res.CycleID = cycleID
	res.Bounds = cfg.Bounds()
	res.Elapsed = time.Since(start)

	if res.Cause != nil {
		s.log.Warn("inspection inconclusive", "cycle", cycleID, "stage", res.Cause.Stage,
			"kind", res.Cause.Kind, "error", res.Cause.Err, "elapsed", res.Elapsed)
	} else {
		s.log.Info("inspection done", "cycle", cycleID, "status", res.Status,
			"mean", fmt.Sprintf("%.2f", res.Stats.Mean), "std", fmt.Sprintf("%.2f", res.Stats.StdDev),
			"points", res.Stats.Count, "elapsed", res.Elapsed)
	}
	return res
}

func (s *InspectionService) inspect(ctx context.Context, cycleID string, frame *image.Gray, cfg entity.InspectionConfig) *entity.InspectionResult {
	if err := ctx.Err(); err != nil {
		return entity.Inconclusive(entity.StageValidate, err)
	}
	if frame == nil || frame.Bounds().Empty() {
		return entity.Inconclusive(entity.StageValidate, fmt.Errorf("%w: empty frame", entity.ErrInvalidConfig))
	}
	if err := cfg.Validate(); err != nil {
		return entity.Inconclusive(entity.StageValidate, err)
	}

	// Опорные прямые ищутся параллельно: кадр только читается
	t0 := time.Now()
	var (
		wg         sync.WaitGroup
		l1, l2     entity.Line
		err1, err2 error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		l1, err1 = s.fitRegion(frame, cfg.ROI1, cfg.Direction1)
	}()
	go func() {
		defer wg.Done()
		l2, err2 = s.fitRegion(frame, cfg.ROI2, cfg.Direction2)
	}()
	wg.Wait()
	s.log.Debug("stage done", "cycle", cycleID, "stage", "lines", "elapsed", time.Since(t0))

	if err1 != nil {
		return entity.Inconclusive(entity.StageLine1, err1)
	}
	if err2 != nil {
		res := entity.Inconclusive(entity.StageLine2, err2)
		res.Line1 = &l1
		return res
	}

	fail := func(stage entity.Stage, err error, arc *entity.ArcCenterResult) *entity.InspectionResult {
		res := entity.Inconclusive(stage, err)
		res.Line1, res.Line2, res.Arc = &l1, &l2, arc
		return res
	}

	t0 = time.Now()
	b := frame.Bounds()
	arc, err := geometry.NewSolver(cfg).Solve(l1, l2, b.Dx(), b.Dy())
	if err != nil {
		return fail(entity.StageArcCenter, err, nil)
	}
	s.log.Debug("stage done", "cycle", cycleID, "stage", "arc_center", "elapsed", time.Since(t0),
		"center", fmt.Sprintf("(%.2f,%.2f)", arc.Center.X, arc.Center.Y), "quadrant", arc.Quadrant)

	t0 = time.Now()
	roi, err := vision.Crop(frame, arc.Region)
	if err != nil {
		return fail(entity.StageArcRegion, err, &arc)
	}
	rotated, err := vision.Rotate(roi, arc.Rotation)
	if err != nil {
		return fail(entity.StageArcRegion, err, &arc)
	}
	center := image.Pt(int(math.Round(arc.Center.X))-arc.Region.X, int(math.Round(arc.Center.Y))-arc.Region.Y)
	origin := vision.RotatePoint(center, arc.Region.Width, arc.Region.Height, arc.Rotation)

	raster, err := vision.ToPolar(rotated, origin, cfg.PolarRadiusBand, cfg.PolarAngleSweep, cfg.PolarAngleIncrement)
	if err != nil {
		return fail(entity.StagePolar, err, &arc)
	}
	s.log.Debug("stage done", "cycle", cycleID, "stage", "polar", "elapsed", time.Since(t0),
		"rows", raster.Rows, "cols", raster.Cols)

	t0 = time.Now()
	// Радиус растёт вниз по строкам развёртки, край дуги ищется снизу
	points := s.extractor.ExtractEdgePoints(raster.Gray(),
		entity.Region{Width: raster.Cols, Height: raster.Rows}, entity.FromBottom)
	if len(points) == 0 {
		return fail(entity.StageArcEdge, entity.ErrNoEdgePoints, &arc)
	}
	positions := make([]int, len(points))
	for i, p := range points {
		positions[i] = raster.Band.Min + p.Y
	}
	s.log.Debug("stage done", "cycle", cycleID, "stage", "arc_edge", "elapsed", time.Since(t0), "points", len(positions))

	res, err := stats.Classify(positions, cfg.Bounds())
	if err != nil {
		return fail(entity.StageStatistics, err, &arc)
	}
	res.Line1, res.Line2, res.Arc = &l1, &l2, &arc
	return res
}

// fitRegion ищет точки края в области и аппроксимирует их прямой
func (s *InspectionService) fitRegion(frame *image.Gray, roi entity.Region, dir entity.Direction) (entity.Line, error) {
	points := s.extractor.ExtractEdgePoints(frame, roi, dir)
	if len(points) == 0 {
		return entity.Line{}, fmt.Errorf("region %+v direction %v: %w", roi, dir, entity.ErrNoEdgePoints)
	}
	line, err := s.fitter.FitLine(points)
	if err != nil {
		return entity.Line{}, fmt.Errorf("region %+v: %w", roi, err)
	}
	return line, nil
}

// Run проверяет кадр с параметрами сервиса, сохраняет итог в историю,
// строит график профиля и запрашивает оценку классификатора.
func (s *InspectionService) Run(ctx context.Context, frame *image.Gray) (*InspectionOutput, error) {
	if s.extractor == nil || s.fitter == nil {
		return nil, fmt.Errorf("inspection pipeline is not configured")
	}

	res := s.Inspect(ctx, frame, s.cfg)
	out := &InspectionOutput{Result: res}

	if s.store != nil {
		if err := s.store.Save(ctx, res); err != nil {
			s.log.Error("failed to save inspection", "cycle", res.CycleID, "error", err)
		}
	}
	if s.renderer != nil && len(res.RadialPositions) > 0 {
		profile, err := s.renderer.RenderProfile(res)
		if err != nil {
			s.log.Warn("failed to render profile", "cycle", res.CycleID, "error", err)
		} else {
			out.Profile = profile
		}
	}
	if s.classifier != nil && frame != nil {
		score, err := s.classifier.Classify(ctx, frame)
		if err != nil {
			s.log.Warn("classifier failed", "cycle", res.CycleID, "error", err)
		} else {
			out.Score = &score
		}
	}
	return out, nil
}

// History возвращает последние итоги из хранилища
func (s *InspectionService) History(ctx context.Context, limit int) ([]entity.InspectionResult, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.Recent(ctx, limit)
}
