package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/container"
	"insert-inspector/internal/domain/entity"
	"insert-inspector/internal/infrastructure/storage"
	"insert-inspector/internal/logging"
)

func newBatchContainer() *container.Container {
	return container.New(entity.DefaultInspectionConfig(), storage.NewMemoryOperatorRepository(),
		nil, nil, nil, logging.Nop())
}

func TestRunBatch_ReportDirErrorIsLogged(t *testing.T) {
	dir := t.TempDir()
	notDir := filepath.Join(dir, "report")
	require.NoError(t, os.WriteFile(notDir, []byte("x"), 0o644))

	var buf bytes.Buffer
	logger := logging.New(&buf, "inspector", logging.LevelInfo)

	failed := runBatch(context.Background(), newBatchContainer(), logger, []string{"frame.png"}, filepath.Join(notDir, "sub"))
	require.True(t, failed)
	require.Contains(t, buf.String(), "[ERROR] failed to create report dir")
}

func TestRunBatch_MissingFrameFails(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, "inspector", logging.LevelInfo)

	failed := runBatch(context.Background(), newBatchContainer(), logger,
		[]string{filepath.Join(t.TempDir(), "missing.png")}, "")
	require.True(t, failed)
}
