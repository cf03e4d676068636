// Internal tests for the engine reply protocol and script rendering.
package oracle

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/archgraph/cgraph"
)

func TestParseReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantDegree int
		wantOrder  string
		wantGens   []string
		wantErr    error
	}{
		{
			name:       "trivial group",
			line:       "degree:4,order:1,gens:",
			wantDegree: 4, wantOrder: "1", wantGens: nil,
		},
		{
			name:       "two generators",
			line:       "degree:4,order:24,gens:(1,2);(1,2,3,4)",
			wantDegree: 4, wantOrder: "24", wantGens: []string{"(1,2)", "(1,2,3,4)"},
		},
		{
			name:       "huge order",
			line:       "degree:25,order:15511210043330985984000000,gens:(1,2)",
			wantDegree: 25, wantOrder: "15511210043330985984000000", wantGens: []string{"(1,2)"},
		},
		{name: "missing degree", line: "order:2,gens:", wantErr: ErrBadReply},
		{name: "missing order", line: "degree:4,gens:", wantErr: ErrBadReply},
		{name: "missing gens", line: "degree:4,order:2", wantErr: ErrBadReply},
		{name: "bad order", line: "degree:4,order:xx,gens:", wantErr: ErrBadReply},
		{name: "bad degree", line: "degree:a,order:2,gens:", wantErr: ErrBadReply},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := parseReply(tc.line)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantDegree, r.degree)
			wantOrder, ok := new(big.Int).SetString(tc.wantOrder, 10)
			require.True(t, ok)
			assert.Zero(t, wantOrder.Cmp(r.order))
			assert.Equal(t, tc.wantGens, r.gens)
		})
	}
}

func TestTupleList(t *testing.T) {
	t.Parallel()

	got := tupleList(
		[]int{4, 3},
		[][]string{{"(1,2)", "(1,2,3,4)"}, {}},
	)
	assert.Equal(t, `[ 4, ["(1,2)", "(1,2,3,4)"] ], [ 3, [] ]`, got)
}

func TestEdgeAndColorRendering(t *testing.T) {
	t.Parallel()

	g, err := cgraph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	assert.Equal(t, "[1,2], [2,1], [2,3], [3,2]", edgeList(g))
	assert.Equal(t, "[1,3], [2]", colorList(cgraph.Coloring{{0, 2}, {1}}))
	assert.Equal(t, "[], [1]", colorList(cgraph.Coloring{{}, {0}}))
}

func TestNewEngine_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewEngine("  ")
	assert.True(t, errors.Is(err, ErrEngineFailed))

	e, err := NewEngine("gap", "-q")
	require.NoError(t, err)
	assert.NotNil(t, e)
}

func TestOrders_LengthMismatch(t *testing.T) {
	t.Parallel()

	e, err := NewEngine("gap")
	require.NoError(t, err)
	_, err = e.Orders([]int{1, 2}, [][]string{{}})
	assert.True(t, errors.Is(err, ErrBadReply))
}
