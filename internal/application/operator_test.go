package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
	"insert-inspector/internal/infrastructure/storage"
)

func TestOperatorService_BeginCheckAndCancel(t *testing.T) {
	repo := storage.NewMemoryOperatorRepository()
	svc := NewOperatorService(repo)
	ctx := context.Background()

	op, err := svc.BeginCheck(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, op.State)

	op, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, op.State)
}

func TestOperatorService_Record(t *testing.T) {
	repo := storage.NewMemoryOperatorRepository()
	svc := NewOperatorService(repo)
	ctx := context.Background()

	op, err := svc.StartProcessing(ctx, 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, op.State)

	_, err = svc.Record(ctx, 2, 20, &entity.InspectionResult{CycleID: "a", Status: entity.StatusPass})
	require.NoError(t, err)
	_, err = svc.Record(ctx, 2, 20, &entity.InspectionResult{CycleID: "b", Status: entity.StatusFail})
	require.NoError(t, err)
	op, err = svc.Record(ctx, 2, 20, entity.Inconclusive(entity.StageLine1, entity.ErrNoEdgePoints))
	require.NoError(t, err)

	require.Equal(t, entity.StateAwaitingPhoto, op.State)
	require.Equal(t, 1, op.Passed)
	require.Equal(t, 1, op.Failed)
	require.Equal(t, 1, op.Inconclusive)
	require.Equal(t, 3, op.Total())
}
