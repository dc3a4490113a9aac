package ll

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/gopred"
)

// TokenSet is a sorted set of token types. It is used for FIRST- and
// FOLLOW-sets, where gopred.Epsilon stands for the empty word and
// gopred.EOF for end of input.
type TokenSet struct {
	set *treeset.Set
}

// NewTokenSet creates a token set containing the given token types.
func NewTokenSet(tts ...gopred.TokType) *TokenSet {
	S := &TokenSet{set: treeset.NewWithIntComparator()}
	for _, tt := range tts {
		S.set.Add(int(tt))
	}
	return S
}

// Add inserts a token type and returns true if it has not been present before.
func (S *TokenSet) Add(tt gopred.TokType) bool {
	if S.set.Contains(int(tt)) {
		return false
	}
	S.set.Add(int(tt))
	return true
}

// Contains checks for membership of a token type.
func (S *TokenSet) Contains(tt gopred.TokType) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(int(tt))
}

// HasEpsilon is true if the set contains the empty word.
func (S *TokenSet) HasEpsilon() bool {
	return S.Contains(gopred.Epsilon)
}

// Size returns the number of elements, epsilon included.
func (S *TokenSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is true for sets without elements.
func (S *TokenSet) Empty() bool {
	return S.Size() == 0
}

// Union adds all elements of other to S, except epsilon if withoutEpsilon
// is set. It returns true if S has changed.
func (S *TokenSet) Union(other *TokenSet, withoutEpsilon bool) bool {
	if other == nil {
		return false
	}
	changed := false
	it := other.set.Iterator()
	for it.Next() {
		tt := gopred.TokType(it.Value().(int))
		if withoutEpsilon && tt == gopred.Epsilon {
			continue
		}
		if S.Add(tt) {
			changed = true
		}
	}
	return changed
}

// Intersects is true if S and other share an element other than epsilon.
func (S *TokenSet) Intersects(other *TokenSet) bool {
	for _, tt := range S.Values() {
		if tt != gopred.Epsilon && other.Contains(tt) {
			return true
		}
	}
	return false
}

// Copy returns an independent copy of S.
func (S *TokenSet) Copy() *TokenSet {
	C := NewTokenSet()
	C.Union(S, false)
	return C
}

// Values returns the token types in increasing order.
func (S *TokenSet) Values() []gopred.TokType {
	return S.AppendTo(nil)
}

// AppendTo appends the token types of S in increasing order to a slice.
func (S *TokenSet) AppendTo(tts []gopred.TokType) []gopred.TokType {
	if S == nil {
		return tts
	}
	it := S.set.Iterator()
	for it.Next() {
		tts = append(tts, gopred.TokType(it.Value().(int)))
	}
	return tts
}

// Equals is true if S and other contain the same token types.
func (S *TokenSet) Equals(other *TokenSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, tt := range S.Values() {
		if !other.Contains(tt) {
			return false
		}
	}
	return true
}

// Names returns the names of the elements, as terminals of grammar g. Epsilon
// is named "ε".
func (S *TokenSet) Names(g *Grammar) []string {
	var names []string
	for _, tt := range S.Values() {
		if tt == gopred.Epsilon {
			names = append(names, "ε")
		} else if A := g.Terminal(tt); A != nil {
			names = append(names, A.Name)
		} else {
			names = append(names, "?")
		}
	}
	return names
}

func (S *TokenSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, tt := range S.Values() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strconv.Itoa(int(tt)))
	}
	b.WriteString("}")
	return b.String()
}
