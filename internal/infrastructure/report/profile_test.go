package report

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
)

func TestRenderProfile(t *testing.T) {
	result := &entity.InspectionResult{
		Status:          entity.StatusFail,
		Stats:           entity.DimensionStats{Count: 4, Mean: 126.5, StdDev: 2.1},
		RadialPositions: []int{124, 126, 127, 129},
		Bounds:          entity.Bounds{Min: 128, Max: 137, MaxStdError: 1.5},
	}

	data, err := NewProfileRenderer().RenderProfile(result)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Greater(t, img.Bounds().Dx(), img.Bounds().Dy())
}

func TestRenderProfile_NoPositions(t *testing.T) {
	_, err := NewProfileRenderer().RenderProfile(entity.Inconclusive(entity.StageLine1, entity.ErrNoEdgePoints))
	require.ErrorIs(t, err, entity.ErrInsufficientData)

	_, err = NewProfileRenderer().RenderProfile(nil)
	require.ErrorIs(t, err, entity.ErrInsufficientData)
}

func TestPointColor(t *testing.T) {
	b := entity.Bounds{Min: 128, Max: 137}
	require.Equal(t, colorPass, PointColor(130, b))
	require.NotEqual(t, colorPass, PointColor(127, b))
	require.Equal(t, colorFail, PointColor(150, b))
}

func TestStatusColor(t *testing.T) {
	require.Equal(t, colorPass, StatusColor(entity.StatusPass))
	require.Equal(t, colorFail, StatusColor(entity.StatusFail))
	require.Equal(t, colorInconclusive, StatusColor(entity.StatusInconclusive))
}

func TestMustHex(t *testing.T) {
	require.Equal(t, "#2e9d4b", StatusColor(entity.StatusPass).Hex())
	require.Equal(t, "#d03b3b", StatusColor(entity.StatusFail).Hex())
	require.Equal(t, "#8a8a8a", StatusColor(entity.StatusInconclusive).Hex())
	require.Panics(t, func() { mustHex("not-a-color") })
}
