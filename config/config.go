package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"insert-inspector/internal/domain/entity"
)

type Config struct {
	TelegramToken string
	DBPath        string // файл истории инспекций, пустой путь отключает историю
	TuningPath    string // JSON с параметрами инспекции, иначе параметры стенда
	LogLevel      string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		DBPath:        os.Getenv("INSPECTOR_DB_PATH"),
		TuningPath:    os.Getenv("INSPECTOR_TUNING"),
		LogLevel:      os.Getenv("INSPECTOR_LOG_LEVEL"),
	}

	return cfg, nil
}

// Inspection возвращает параметры инспекции: значения стенда,
// переопределённые файлом TuningPath, если он задан.
func (c *Config) Inspection() (entity.InspectionConfig, error) {
	cfg := entity.DefaultInspectionConfig()
	if c.TuningPath == "" {
		return cfg, nil
	}
	t, err := LoadTuning(c.TuningPath)
	if err != nil {
		return cfg, err
	}
	cfg = t.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("tuning %s: %w", c.TuningPath, err)
	}
	return cfg, nil
}

// Tuning параметры инспекции из JSON. Незаданные поля не меняют значения по умолчанию.
type Tuning struct {
	ROI1       *entity.Region `json:"roi1,omitempty"`
	Direction1 *string        `json:"direction1,omitempty"`
	ROI2       *entity.Region `json:"roi2,omitempty"`
	Direction2 *string        `json:"direction2,omitempty"`

	PixelsPerMillimeter *float64 `json:"pixels_per_mm,omitempty"`
	NominalRadiusMM     *float64 `json:"nominal_radius_mm,omitempty"`

	MinAcceptableRadiusPx *float64 `json:"min_radius_px,omitempty"`
	MaxAcceptableRadiusPx *float64 `json:"max_radius_px,omitempty"`
	MaxStdErrorPx         *float64 `json:"max_std_px,omitempty"`

	PolarRadiusBand     *entity.RadiusBand `json:"polar_band,omitempty"`
	PolarAngleSweep     *float64           `json:"polar_sweep_deg,omitempty"`
	PolarAngleIncrement *float64           `json:"polar_increment_deg,omitempty"`

	ArcMargin *int `json:"arc_margin_px,omitempty"`

	direction1 entity.Direction
	direction2 entity.Direction
}

// LoadTuning читает и проверяет JSON с параметрами инспекции
func LoadTuning(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("tuning file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat tuning file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("tuning file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}

	t := &Tuning{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning JSON: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate проверяет заданные поля
func (t *Tuning) Validate() error {
	if t.Direction1 != nil {
		d, err := ParseDirection(*t.Direction1)
		if err != nil {
			return fmt.Errorf("direction1: %w", err)
		}
		t.direction1 = d
	}
	if t.Direction2 != nil {
		d, err := ParseDirection(*t.Direction2)
		if err != nil {
			return fmt.Errorf("direction2: %w", err)
		}
		t.direction2 = d
	}
	for name, r := range map[string]*entity.Region{"roi1": t.ROI1, "roi2": t.ROI2} {
		if r != nil && r.Empty() {
			return fmt.Errorf("%s must have positive width and height", name)
		}
	}
	for name, v := range map[string]*float64{
		"pixels_per_mm":       t.PixelsPerMillimeter,
		"nominal_radius_mm":   t.NominalRadiusMM,
		"max_std_px":          t.MaxStdErrorPx,
		"polar_sweep_deg":     t.PolarAngleSweep,
		"polar_increment_deg": t.PolarAngleIncrement,
	} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, *v)
		}
	}
	if t.PolarRadiusBand != nil {
		if err := t.PolarRadiusBand.Validate(); err != nil {
			return err
		}
	}
	if t.ArcMargin != nil && *t.ArcMargin < 0 {
		return fmt.Errorf("arc_margin_px must be non-negative, got %d", *t.ArcMargin)
	}
	return nil
}

// Apply переопределяет заданными полями параметры cfg
func (t *Tuning) Apply(cfg entity.InspectionConfig) entity.InspectionConfig {
	if t.ROI1 != nil {
		cfg.ROI1 = *t.ROI1
	}
	if t.Direction1 != nil {
		cfg.Direction1 = t.direction1
	}
	if t.ROI2 != nil {
		cfg.ROI2 = *t.ROI2
	}
	if t.Direction2 != nil {
		cfg.Direction2 = t.direction2
	}
	if t.PixelsPerMillimeter != nil {
		cfg.PixelsPerMillimeter = *t.PixelsPerMillimeter
	}
	if t.NominalRadiusMM != nil {
		cfg.NominalRadiusMM = *t.NominalRadiusMM
	}
	if t.MinAcceptableRadiusPx != nil {
		cfg.MinAcceptableRadiusPx = *t.MinAcceptableRadiusPx
	}
	if t.MaxAcceptableRadiusPx != nil {
		cfg.MaxAcceptableRadiusPx = *t.MaxAcceptableRadiusPx
	}
	if t.MaxStdErrorPx != nil {
		cfg.MaxStdErrorPx = *t.MaxStdErrorPx
	}
	if t.PolarRadiusBand != nil {
		cfg.PolarRadiusBand = *t.PolarRadiusBand
	}
	if t.PolarAngleSweep != nil {
		cfg.PolarAngleSweep = *t.PolarAngleSweep
	}
	if t.PolarAngleIncrement != nil {
		cfg.PolarAngleIncrement = *t.PolarAngleIncrement
	}
	if t.ArcMargin != nil {
		cfg.ArcMargin = *t.ArcMargin
	}
	return cfg
}

// ParseDirection разбирает направление поиска: from_left, from_right,
// from_bottom, from_top.
func ParseDirection(s string) (entity.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "from_left":
		return entity.FromLeft, nil
	case "from_right":
		return entity.FromRight, nil
	case "from_bottom":
		return entity.FromBottom, nil
	case "from_top":
		return entity.FromTop, nil
	}
	return entity.Direction{}, fmt.Errorf("unknown direction %q", s)
}
