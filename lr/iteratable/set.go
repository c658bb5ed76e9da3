package iteratable

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Element is the type of values stored in a Set. Two elements are considered
// equal if their hashes are equal.
type Element interface {
	Hash() string
}

// Set is an insertion-ordered set of elements.
type Set struct {
	items  []Element
	index  map[string]int
	cursor int
}

// NewSet creates an empty set with an initial capacity.
func NewSet(capacity int) *Set {
	if capacity < 0 {
		capacity = 0
	}
	return &Set{
		items:  make([]Element, 0, capacity),
		index:  make(map[string]int, capacity),
		cursor: -1,
	}
}

// Add adds x to the set, if not already present. Returns true if x has been added.
func (s *Set) Add(x Element) bool {
	h := x.Hash()
	if _, ok := s.index[h]; ok {
		return false
	}
	s.index[h] = len(s.items)
	s.items = append(s.items, x)
	return true
}

// Contains checks for membership of x.
func (s *Set) Contains(x Element) bool {
	_, ok := s.index[x.Hash()]
	return ok
}

// Get finds an element by hash.
func (s *Set) Get(hash string) (Element, bool) {
	if i, ok := s.index[hash]; ok {
		return s.items[i], true
	}
	return nil, false
}

// Size returns the number of elements in s.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Empty is true for a set without elements.
func (s *Set) Empty() bool {
	return s.Size() == 0
}

// Values returns the elements of s in order of insertion.
func (s *Set) Values() []Element {
	vals := make([]Element, len(s.items))
	copy(vals, s.items)
	return vals
}

// Each calls f for every element, in order of insertion.
func (s *Set) Each(f func(Element)) {
	for _, x := range s.items {
		f(x)
	}
}

// Copy creates a shallow copy of s.
func (s *Set) Copy() *Set {
	c := NewSet(len(s.items))
	for _, x := range s.items {
		c.Add(x)
	}
	return c
}

// Union adds all elements of other to s. s is returned.
func (s *Set) Union(other *Set) *Set {
	if other == nil {
		return s
	}
	for _, x := range other.items {
		s.Add(x)
	}
	return s
}

// IterateOnce starts an iteration over s. Elements added to s during the
// iteration will be visited as well.
//
//    S.IterateOnce()
//    for S.Next() {
//        x := S.Item()
//        ...
//    }
//
func (s *Set) IterateOnce() {
	s.cursor = -1
}

// Next moves the iteration cursor. Returns false if there are no more elements.
func (s *Set) Next() bool {
	if s.cursor+1 >= len(s.items) {
		s.cursor = len(s.items)
		return false
	}
	s.cursor++
	return true
}

// Item returns the element at the iteration cursor.
func (s *Set) Item() Element {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return nil
	}
	return s.items[s.cursor]
}

// Keys returns the sorted hashes of all elements.
func (s *Set) Keys() []string {
	keys := make([]string, 0, len(s.items))
	for h := range s.index {
		keys = append(keys, h)
	}
	sort.Strings(keys)
	return keys
}

type setKey struct {
	Items []string
}

// Hash returns a structural hash over the elements of s, independent of the
// order of insertion.
func (s *Set) Hash() string {
	return fmt.Sprintf("%x", structhash.Sha1(setKey{Items: s.Keys()}, 1))
}

// Equals is true if both sets contain the same elements.
func (s *Set) Equals(other *Set) bool {
	if s.Size() != other.Size() {
		return false
	}
	if other == nil || s == nil {
		return true // both empty
	}
	for h := range s.index {
		if _, ok := other.index[h]; !ok {
			return false
		}
	}
	return true
}
