package editdist

// MemoryMode controls how Distance stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix; required for ReturnScript.
//   - TwoRows    — keep only the previous and current rows; distance only.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports edit-script recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rows only; O(M) memory, no edit script.
	TwoRows
)

// Options configures Distance.
//
// Fields:
//   - Window       — maximum |i-j| considered; 0 means unconstrained, negative is invalid.
//   - ReturnScript — also return the edit script (requires FullMatrix).
//   - MemoryMode   — FullMatrix or TwoRows.
type Options struct {
	Window       int
	ReturnScript bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns unconstrained, distance-only, two-row options.
func DefaultOptions() Options {
	return Options{Window: 0, ReturnScript: false, MemoryMode: TwoRows}
}

// OpTag names one step of an edit script.
type OpTag byte

const (
	Equal      OpTag = 'e'
	Substitute OpTag = 'r'
	Insert     OpTag = 'i'
	Delete     OpTag = 'd'
)

// String returns the long name of the tag.
func (t OpTag) String() string {
	switch t {
	case Equal:
		return "equal"
	case Substitute:
		return "replace"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Op is a single edit step. I indexes a, J indexes b; for Insert, I is the
// position in a before which b[J] is inserted, for Delete, J is the position
// in b after which a[I] disappears.
type Op struct {
	Tag OpTag
	I   int
	J   int
}
