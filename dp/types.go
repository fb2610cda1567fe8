package dp

import "errors"

var (
	// ErrNegativeInput indicates an argument that must be non-negative.
	ErrNegativeInput = errors.New("dp: input must be non-negative")

	// ErrEmptyInput indicates a slice argument that must be non-empty.
	ErrEmptyInput = errors.New("dp: input must be non-empty")

	// ErrUnreachable indicates that no combination of the given items
	// reaches the target.
	ErrUnreachable = errors.New("dp: target unreachable")

	// ErrBadCoin indicates a non-positive coin denomination.
	ErrBadCoin = errors.New("dp: coin denominations must be positive")

	// ErrBadJump indicates a non-positive jump limit.
	ErrBadJump = errors.New("dp: jump size must be positive")

	// ErrBadGrid indicates an empty or ragged grid, or one holding a
	// character other than '.' and '*'.
	ErrBadGrid = errors.New("dp: malformed grid")

	// ErrOpsNeedFullMatrix indicates that edit-script reconstruction
	// was requested in two-row memory mode.
	ErrOpsNeedFullMatrix = errors.New("dp: ReturnOps requires MemoryMode=FullMatrix")
)

// MemoryMode controls how EditDistance stores its DP table.
//
//   - FullMatrix — keep the whole (n+1)x(m+1) table. Allows distance
//     plus edit-script reconstruction. Memory: O(n·m).
//   - TwoRows — keep only the current and previous row. Memory: O(m),
//     no script reconstruction.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support ReturnOps.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling two-row storage, distance only.
	TwoRows
)

// EditOptions configures EditDistance.
//
// Fields:
//   - MemoryMode — FullMatrix or TwoRows storage.
//   - ReturnOps  — if true, backtrack and return the edit script.
//     Requires MemoryMode=FullMatrix.
type EditOptions struct {
	MemoryMode MemoryMode
	ReturnOps  bool
}

// EditOpKind labels one step of an edit script.
type EditOpKind int

const (
	// OpMatch keeps a character unchanged.
	OpMatch EditOpKind = iota

	// OpSubstitute replaces a[I] with b[J].
	OpSubstitute

	// OpInsert inserts b[J].
	OpInsert

	// OpDelete removes a[I].
	OpDelete
)

// String returns a short mnemonic for the op kind.
func (k EditOpKind) String() string {
	switch k {
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "sub"
	case OpInsert:
		return "ins"
	case OpDelete:
		return "del"
	default:
		return "unknown"
	}
}

// EditOp is one step of an edit script. I indexes into the source
// string and J into the target; the index an op does not touch is -1
// (J for deletions, I for insertions).
type EditOp struct {
	Kind EditOpKind
	I, J int
}
