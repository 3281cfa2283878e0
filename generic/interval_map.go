/*
interval_map.go - Piecewise mapping from intervals to values

PURPOSE:
  An IntervalMap binds disjoint intervals of keys to values. It is built
  incrementally from possibly-overlapping insertions: the latest Put owns
  its whole key range, and whatever earlier bindings it overlapped are
  truncated, split or dropped.

INVARIANTS:
  1. Bindings never overlap.
  2. Bindings are kept sorted by lower bound (then upper bound).
  3. Adjacent bindings with equal values are NOT merged.

LAST WRITE WINS:
  m.Put([1, 10], "a")
  m.Put([4, 6],  "b")
  // bindings: [1, 4) -> a, [4, 6] -> b, (6, 10] -> a

CONCURRENCY:
  Not safe for concurrent mutation. Callers that share a map across
  goroutines wrap it in their own mutex.

SEE ALSO:
  - interval.go: Intersection / ComplementRelativeTo used for splitting
  - accrual/tenure.go: Tenure tiers as an IntervalMap
*/
package generic

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

type binding[K, V any] struct {
	interval Interval[K]
	value    V
}

// IntervalMap maps disjoint intervals of K to values of V.
type IntervalMap[K, V any] struct {
	domain   Domain[K]
	bindings []binding[K, V]
}

// NewIntervalMap returns an empty map over keys ordered by domain.
func NewIntervalMap[K, V any](domain Domain[K]) *IntervalMap[K, V] {
	return &IntervalMap[K, V]{domain: domain}
}

// NewOrderedIntervalMap returns an empty map over a cmp.Ordered key type.
func NewOrderedIntervalMap[K cmp.Ordered, V any]() *IntervalMap[K, V] {
	return NewIntervalMap[K, V](Ordered[K]())
}

// Put binds every key in interval to value, overwriting any earlier binding
// wherever the ranges overlap. An empty interval is ignored.
func (m *IntervalMap[K, V]) Put(interval Interval[K], value V) {
	if interval.IsEmpty() {
		return
	}
	m.carve(interval)
	pos := sort.Search(len(m.bindings), func(j int) bool {
		return m.less(interval, m.bindings[j].interval)
	})
	m.bindings = slices.Insert(m.bindings, pos, binding[K, V]{interval: interval, value: value})
}

// Remove unbinds every key in interval. Bindings partly outside interval
// keep their remainders.
func (m *IntervalMap[K, V]) Remove(interval Interval[K]) {
	if interval.IsEmpty() {
		return
	}
	m.carve(interval)
}

// carve cuts interval out of every existing binding. Remainders stay at the
// position of the binding they came from, so the slice remains sorted.
func (m *IntervalMap[K, V]) carve(interval Interval[K]) {
	carved := make([]binding[K, V], 0, len(m.bindings)+1)
	for _, b := range m.bindings {
		if !b.interval.Intersects(interval) {
			carved = append(carved, b)
			continue
		}
		for _, rest := range interval.ComplementRelativeTo(b.interval) {
			carved = append(carved, binding[K, V]{interval: rest, value: b.value})
		}
	}
	m.bindings = carved
}

// Get returns the value bound to key; ok is false if no binding includes it.
func (m *IntervalMap[K, V]) Get(key K) (value V, ok bool) {
	b, found := m.find(key)
	if !found {
		return value, false
	}
	return b.value, true
}

// ContainsKey reports whether some binding includes key.
func (m *IntervalMap[K, V]) ContainsKey(key K) bool {
	_, found := m.find(key)
	return found
}

// ContainsIntersectingKey reports whether some binding shares a key with
// interval.
func (m *IntervalMap[K, V]) ContainsIntersectingKey(interval Interval[K]) bool {
	for _, b := range m.bindings {
		if b.interval.Intersects(interval) {
			return true
		}
	}
	return false
}

// Len returns the number of bindings.
func (m *IntervalMap[K, V]) Len() int {
	return len(m.bindings)
}

// All yields every binding in ascending key order: by where each interval
// starts on the line, so [4, 4] comes before (4, ∞). Interval.Compare sorts
// excluded lower limits first and would order that pair the other way.
func (m *IntervalMap[K, V]) All() iter.Seq2[Interval[K], V] {
	return func(yield func(Interval[K], V) bool) {
		for _, b := range m.bindings {
			if !yield(b.interval, b.value) {
				return
			}
		}
	}
}

// find locates the binding including key. Bindings are disjoint and sorted,
// so the ones entirely below key form a prefix.
func (m *IntervalMap[K, V]) find(key K) (binding[K, V], bool) {
	j := sort.Search(len(m.bindings), func(j int) bool {
		return !m.bindings[j].interval.IsBelow(key)
	})
	if j < len(m.bindings) && m.bindings[j].interval.Includes(key) {
		return m.bindings[j], true
	}
	return binding[K, V]{}, false
}

func (m *IntervalMap[K, V]) less(a, b Interval[K]) bool {
	order := a.comparator(b)
	if order == nil {
		order = m.domain.order
	}
	if c := compareLower(order, a.lower, b.lower); c != 0 {
		return c < 0
	}
	return compareUpper(order, a.upper, b.upper) < 0
}
