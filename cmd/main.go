package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"insert-inspector/config"
	telegram "insert-inspector/internal/api"
	"insert-inspector/internal/container"
	"insert-inspector/internal/domain/port"
	"insert-inspector/internal/infrastructure/frames"
	"insert-inspector/internal/infrastructure/report"
	"insert-inspector/internal/infrastructure/storage"
	"insert-inspector/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logging.NewLogger("inspector", logging.LevelInfo).Error("failed to load config", "error", err)
		return 1
	}

	tuningPath := flag.String("tuning", cfg.TuningPath, "JSON с параметрами инспекции")
	dbPath := flag.String("db", cfg.DBPath, "файл sqlite для истории инспекций")
	reportDir := flag.String("report", "", "каталог для PNG графиков профиля")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [-tuning f.json] [-db path] [-report dir] image...\n"+
				"Без файлов запускается Telegram-бот (нужен TELEGRAM_TOKEN).\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	cfg.TuningPath = *tuningPath
	cfg.DBPath = *dbPath

	logger := logging.NewLogger("inspector", logging.ParseLevel(cfg.LogLevel))

	inspection, err := cfg.Inspection()
	if err != nil {
		logger.Error("failed to load inspection parameters", "error", err)
		return 1
	}

	// История инспекций необязательна
	var store port.ResultStore
	if cfg.DBPath != "" {
		s, err := storage.NewSQLiteResultStore(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open result store", "path", cfg.DBPath, "error", err)
			return 1
		}
		defer s.Close()
		store = s
	}

	// Собираем сервисы приложения
	appContainer := container.New(inspection, storage.NewMemoryOperatorRepository(),
		store, report.NewProfileRenderer(), nil, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flag.NArg() > 0 {
		if failed := runBatch(ctx, appContainer, logger, flag.Args(), *reportDir); failed {
			return 1
		}
		return 0
	}

	if cfg.TelegramToken == "" {
		logger.Error("TELEGRAM_TOKEN is required when no images are given")
		return 2
	}

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, logger)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		return 1
	}

	logger.Info("bot is running")
	if err := bot.Run(ctx); err != nil {
		logger.Error("bot stopped", "error", err)
		return 1
	}
	return 0
}

// runBatch проверяет файлы кадров и печатает вердикт по каждому.
// Возвращает true, если хотя бы один кадр не годен или не прочитан.
func runBatch(ctx context.Context, c *container.Container, logger *logging.Logger, paths []string, reportDir string) bool {
	if reportDir != "" {
		if err := os.MkdirAll(reportDir, 0o755); err != nil {
			logger.Error("failed to create report dir", "dir", reportDir, "error", err)
			return true
		}
	}

	failed := false
	for _, path := range paths {
		frame, err := frames.LoadGray(path)
		if err != nil {
			fmt.Printf("%s\tERROR\t%v\n", path, err)
			failed = true
			continue
		}

		out, err := c.InspectionService.Run(ctx, frame)
		if err != nil {
			fmt.Printf("%s\tERROR\t%v\n", path, err)
			failed = true
			continue
		}

		res := out.Result
		if res.Cause != nil {
			fmt.Printf("%s\t%s\t%s/%s\n", path, res.Status, res.Cause.Stage, res.Cause.Kind)
		} else {
			fmt.Printf("%s\t%s\tmean=%.2f\tstd=%.2f\tn=%d\n",
				path, res.Status, res.Stats.Mean, res.Stats.StdDev, res.Stats.Count)
		}
		if !res.Passed() {
			failed = true
		}

		if reportDir != "" && len(out.Profile) > 0 {
			name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + "_profile.png"
			if err := os.WriteFile(filepath.Join(reportDir, name), out.Profile, 0o644); err != nil {
				logger.Error("failed to write report", "frame", path, "error", err)
			}
		}
	}
	return failed
}
