package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"insert-inspector/internal/domain/entity"
)

func TestKernel_Shapes(t *testing.T) {
	vertical := Kernel(entity.AxisVertical)
	require.Len(t, vertical, 7)
	require.Len(t, vertical[0], 7)
	require.Equal(t, []float64{6, 6, 6, 6, 6, 6, 6}, vertical[3])

	horizontal := Kernel(entity.AxisHorizontal)
	require.Len(t, horizontal, 5)
	require.Len(t, horizontal[0], 7)
	for _, row := range horizontal {
		require.Equal(t, profile[:], row)
	}
}

func TestKernel_NotNormalized(t *testing.T) {
	var sum float64
	for _, row := range Kernel(entity.AxisVertical) {
		for _, v := range row {
			sum += v
		}
	}
	require.Equal(t, 14.0, sum)
}
