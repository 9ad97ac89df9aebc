package sets

import "math/bits"

// KnownSet is a bit-packed subset of the nine knowns.
type KnownSet uint16

// EmptyKnownSet returns the empty set.
func EmptyKnownSet() KnownSet { return 0 }

// FullKnownSet returns the set of all nine knowns.
func FullKnownSet() KnownSet { return (1 << KnownCount) - 1 }

// KnownSetOf builds a KnownSet from individual knowns.
func KnownSetOf(knowns ...Known) KnownSet {
	var s KnownSet
	for _, k := range knowns {
		s |= KnownSet(k.Bit())
	}
	return s
}

// Has reports whether k is a member.
func (s KnownSet) Has(k Known) bool {
	return s&KnownSet(k.Bit()) != 0
}

// With returns a new set with k added.
func (s KnownSet) With(k Known) KnownSet {
	return s | KnownSet(k.Bit())
}

// Without returns a new set with k removed.
func (s KnownSet) Without(k Known) KnownSet {
	return s &^ KnownSet(k.Bit())
}

// Union returns s ∪ other.
func (s KnownSet) Union(other KnownSet) KnownSet { return s | other }

// Intersect returns s ∩ other.
func (s KnownSet) Intersect(other KnownSet) KnownSet { return s & other }

// Diff returns s \ other.
func (s KnownSet) Diff(other KnownSet) KnownSet { return s &^ other }

// Complement returns the knowns not in s.
func (s KnownSet) Complement() KnownSet { return FullKnownSet() &^ s }

// IsEmpty reports whether s has no members.
func (s KnownSet) IsEmpty() bool { return s == 0 }

// Len returns the cardinality of s.
func (s KnownSet) Len() int { return bits.OnesCount16(uint16(s)) }

// HasAny reports whether s and other share any member.
func (s KnownSet) HasAny(other KnownSet) bool { return s&other != 0 }

// HasAll reports whether s contains every member of subset.
func (s KnownSet) HasAll(subset KnownSet) bool { return s&subset == subset }

// IsSubsetOf reports whether every member of s is in superset.
func (s KnownSet) IsSubsetOf(superset KnownSet) bool { return superset.HasAll(s) }

// First returns the lowest-indexed member and true, or (0, false) if empty.
func (s KnownSet) First() (Known, bool) {
	if s == 0 {
		return 0, false
	}
	return Known(bits.TrailingZeros16(uint16(s))), true
}

// AsSingle returns the one member of s, or (0, false) if s doesn't have
// exactly one member.
func (s KnownSet) AsSingle() (Known, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return s.First()
}

// Pop returns the lowest-indexed member, the remaining set, and true; or
// (0, s, false) if s is empty.
func (s KnownSet) Pop() (Known, KnownSet, bool) {
	k, ok := s.First()
	if !ok {
		return 0, s, false
	}
	return k, s.Without(k), true
}

// Knowns returns the members of s in ascending order.
func (s KnownSet) Knowns() []Known {
	out := make([]Known, 0, s.Len())
	for rem := s; !rem.IsEmpty(); {
		var k Known
		k, rem, _ = rem.Pop()
		out = append(out, k)
	}
	return out
}

// Pairs returns every unordered pair of members, in ascending order.
func (s KnownSet) Pairs() [][2]Known {
	ks := s.Knowns()
	var out [][2]Known
	for i := 0; i < len(ks); i++ {
		for j := i + 1; j < len(ks); j++ {
			out = append(out, [2]Known{ks[i], ks[j]})
		}
	}
	return out
}

func (s KnownSet) String() string {
	out := []byte{'{'}
	for i, k := range s.Knowns() {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, byte('0'+k.Value()))
	}
	out = append(out, '}')
	return string(out)
}
