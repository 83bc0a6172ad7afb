package resource

// CharSet is an ordered set of characters: List keeps file order for random
// sampling, Contains answers membership in O(1).
type CharSet struct {
	list  []string
	index map[string]struct{}
}

// NewCharSet builds a CharSet from entries, dropping blanks and duplicates.
func NewCharSet(entries []string) CharSet {
	cs := CharSet{index: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		if e == "" {
			continue
		}
		if _, dup := cs.index[e]; dup {
			continue
		}
		cs.index[e] = struct{}{}
		cs.list = append(cs.list, e)
	}
	return cs
}

// Contains reports whether s is a member.
func (c CharSet) Contains(s string) bool {
	_, ok := c.index[s]
	return ok
}

// Len returns the number of members.
func (c CharSet) Len() int { return len(c.list) }

// At returns the i-th member in file order.
func (c CharSet) At(i int) string { return c.list[i] }

// List returns a copy of the members in file order.
func (c CharSet) List() []string {
	out := make([]string, len(c.list))
	copy(out, c.list)
	return out
}

// Vocabulary is the word list used for random sampling and for
// vocabulary-level phonetic lookups.
type Vocabulary []string
