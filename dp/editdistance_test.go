package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarvikIIT/algokit/dp"
)

// TestEditDistance_Basic checks textbook pairs in the default
// full-matrix mode.
func TestEditDistance_Basic(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"horse", "ros", 3},
	}
	for _, c := range cases {
		got, ops, err := dp.EditDistance(c.a, c.b, nil)
		require.NoError(t, err, "%q→%q", c.a, c.b)
		assert.Equal(t, c.want, got, "%q→%q", c.a, c.b)
		assert.Nil(t, ops, "no ops requested")
	}
}

// TestEditDistance_TwoRows must agree with the full matrix on every
// pair, and refuse script reconstruction.
func TestEditDistance_TwoRows(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"}, {"", "xyz"}, {"same", "same"}, {"a", "b"},
	}
	for _, p := range pairs {
		full, _, err := dp.EditDistance(p[0], p[1], nil)
		require.NoError(t, err)
		rolled, _, err := dp.EditDistance(p[0], p[1], &dp.EditOptions{MemoryMode: dp.TwoRows})
		require.NoError(t, err)
		assert.Equal(t, full, rolled, "%q→%q", p[0], p[1])
	}

	_, _, err := dp.EditDistance("a", "b", &dp.EditOptions{
		MemoryMode: dp.TwoRows,
		ReturnOps:  true,
	})
	assert.ErrorIs(t, err, dp.ErrOpsNeedFullMatrix)
}

// applyOps replays an edit script against a and returns the result,
// so tests can verify the script actually transforms a into b.
func applyOps(a, b string, ops []dp.EditOp) string {
	var out []byte
	for _, op := range ops {
		switch op.Kind {
		case dp.OpMatch:
			out = append(out, a[op.I])
		case dp.OpSubstitute, dp.OpInsert:
			out = append(out, b[op.J])
		case dp.OpDelete:
			// drop a[op.I]
		}
	}

	return string(out)
}

// TestEditDistance_Ops validates the reconstructed script: it must
// transform a into b using exactly distance non-match operations.
func TestEditDistance_Ops(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"horse", "ros"},
		{"", "ab"},
		{"ab", ""},
		{"abc", "abc"},
	}
	opts := &dp.EditOptions{MemoryMode: dp.FullMatrix, ReturnOps: true}
	for _, p := range pairs {
		dist, ops, err := dp.EditDistance(p[0], p[1], opts)
		require.NoError(t, err, "%q→%q", p[0], p[1])

		assert.Equal(t, p[1], applyOps(p[0], p[1], ops), "script must rebuild target")

		edits := 0
		for _, op := range ops {
			if op.Kind != dp.OpMatch {
				edits++
			}
		}
		assert.Equal(t, dist, edits, "%q→%q: non-match ops must equal distance", p[0], p[1])
	}
}

func TestEditOpKind_String(t *testing.T) {
	assert.Equal(t, "match", dp.OpMatch.String())
	assert.Equal(t, "sub", dp.OpSubstitute.String())
	assert.Equal(t, "ins", dp.OpInsert.String())
	assert.Equal(t, "del", dp.OpDelete.String())
}
