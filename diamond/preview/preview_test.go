package preview

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsartoris/football-viz/diamond"
)

// Only the data shaping is tested here: importing this package already
// needs a gnuplot binary on the PATH.
func TestGroups(t *testing.T) {
	left, err := diamond.NewMetric([]float64{0, 25, 50, 75, 100}, "Progressive passes", "")
	require.NoError(t, err)
	right, err := diamond.NewMetric([]float64{0.1, 0.3, 0.5, 0.7, 1.0}, "xA", "")
	require.NoError(t, err)
	f, err := diamond.Create("Creators", "", nil,
		[]string{"Pedri", "Kroos", "Rodri", "Modric", "Messi"}, left, right)
	require.NoError(t, err)

	groups := Groups(f)
	require.Len(t, groups, 2)
	assert.Equal(t, "entities", groups[0].Name)
	assert.Len(t, groups[0].XY[0], 4)
	assert.Equal(t, "notable", groups[1].Name)
	require.Len(t, groups[1].XY[0], 1)

	// The top corner of the diamond is straight above the origin.
	assert.InDelta(t, 0, groups[1].XY[0][0], 1e-9)
	assert.InDelta(t, 0.99*math.Sqrt2*Scale, groups[1].XY[1][0], 1e-9)
}
