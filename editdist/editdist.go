package editdist

import "errors"

var (
	// ErrBadInput indicates a negative Window.
	ErrBadInput = errors.New("editdist: window must be >= 0")

	// ErrScriptNeedsMatrix indicates ReturnScript with a non-FullMatrix mode.
	ErrScriptNeedsMatrix = errors.New("editdist: ReturnScript requires MemoryMode=FullMatrix")

	// ErrOutsideWindow indicates that |len(a)-len(b)| exceeds the Window, so
	// no alignment exists inside the band.
	ErrOutsideWindow = errors.New("editdist: sequences cannot be aligned inside the window")
)

// unreachable marks DP cells outside the band; any real distance is smaller.
const unreachable = int(^uint(0) >> 2)

// Distance computes the Levenshtein distance between a and b (unit cost for
// insert, delete and substitute). When opts.ReturnScript is set, the edit
// script is returned in order from the start of both sequences.
//
// Algorithm (full matrix):
//  1. D[i][0] = i, D[0][j] = j.
//  2. D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+cost(i,j)).
//  3. distance = D[n][m]; backtrack prefers diagonal, then delete, then insert.
//
// Empty inputs are valid: the distance is the other sequence's length.
func Distance(a, b []rune, opts *Options) (int, []Op, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < 0 {
		return 0, nil, ErrBadInput
	}
	if o.ReturnScript && o.MemoryMode != FullMatrix {
		return 0, nil, ErrScriptNeedsMatrix
	}

	n, m := len(a), len(b)
	window := unreachable
	if o.Window > 0 {
		window = o.Window
		if abs(n-m) > window {
			return 0, nil, ErrOutsideWindow
		}
	}

	// Prepare DP storage.
	rows := 2
	if o.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]int, rows)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	row := func(i int) []int {
		if o.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	// Initialize first row.
	first := row(0)
	for j := 0; j <= m; j++ {
		if j > window {
			first[j] = unreachable
			continue
		}
		first[j] = j
	}

	// Fill DP.
	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		if i > window {
			curr[0] = unreachable
		} else {
			curr[0] = i
		}
		for j := 1; j <= m; j++ {
			if abs(i-j) > window {
				curr[j] = unreachable
				continue
			}
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
	}

	distance := row(n)[m]
	if !o.ReturnScript {
		return distance, nil, nil
	}
	return distance, backtrack(dp, a, b), nil
}

// backtrack recovers the edit script from a full matrix.
func backtrack(dp [][]int, a, b []rune) []Op {
	var script []Op
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && dp[i][j] == dp[i-1][j-1]:
			script = append(script, Op{Tag: Equal, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+1:
			script = append(script, Op{Tag: Substitute, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			script = append(script, Op{Tag: Delete, I: i - 1, J: j})
			i--
		default:
			script = append(script, Op{Tag: Insert, I: i, J: j - 1})
			j--
		}
	}
	// reverse in-place
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}
	return script
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
