package generic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/calendar-algebra/generic"
)

func bindings[V any](m *generic.IntervalMap[int, V]) map[string]V {
	out := make(map[string]V)
	for iv, v := range m.All() {
		out[iv.String()] = v
	}
	return out
}

func newTestMap() *generic.IntervalMap[int, string] {
	m := generic.NewOrderedIntervalMap[int, string]()
	m.Put(generic.Closed(1, 3), "a")
	m.Put(generic.Closed(5, 9), "b")
	m.Put(generic.Open(9, 12), "c")
	return m
}

// =============================================================================
// LOOKUP
// =============================================================================

func TestIntervalMap_Get(t *testing.T) {
	m := newTestMap()

	tests := []struct {
		key    int
		want   string
		wantOK bool
	}{
		{2, "a", true},
		{3, "a", true},
		{4, "", false},
		{9, "b", true},
		{10, "c", true},
		{12, "", false},
		{0, "", false},
	}
	for _, tt := range tests {
		got, ok := m.Get(tt.key)
		assert.Equal(t, tt.wantOK, ok, "key %d", tt.key)
		assert.Equal(t, tt.want, got, "key %d", tt.key)
		assert.Equal(t, tt.wantOK, m.ContainsKey(tt.key), "key %d", tt.key)
	}
}

func TestIntervalMap_ContainsIntersectingKey(t *testing.T) {
	m := newTestMap()

	assert.True(t, m.ContainsIntersectingKey(generic.Closed(3, 4)))
	assert.False(t, m.ContainsIntersectingKey(generic.Open(3, 5)))
	assert.True(t, m.ContainsIntersectingKey(generic.AtLeast(11)))
	assert.False(t, m.ContainsIntersectingKey(generic.Empty[int]()))
}

// =============================================================================
// LAST WRITE WINS
// =============================================================================

func TestIntervalMap_Put_OverlapTruncatesEarlierBinding(t *testing.T) {
	// GIVEN: [1,3]→a, [5,9]→b, (9,12)→c
	// WHEN: Putting [11,13]→d over the end of c
	// THEN: d owns 11 to 13, c keeps (9,11)

	m := newTestMap()
	m.Put(generic.Closed(11, 13), "d")

	got, ok := m.Get(11)
	require.True(t, ok)
	assert.Equal(t, "d", got)

	got, ok = m.Get(10)
	require.True(t, ok)
	assert.Equal(t, "c", got)

	assert.Equal(t, map[string]string{
		"[1, 3]":   "a",
		"[5, 9]":   "b",
		"(9, 11)":  "c",
		"[11, 13]": "d",
	}, bindings(m))
}

func TestIntervalMap_Put_InsideSplitsBinding(t *testing.T) {
	m := generic.NewOrderedIntervalMap[int, string]()
	m.Put(generic.Closed(1, 10), "a")
	m.Put(generic.Closed(4, 6), "b")

	assert.Equal(t, 3, m.Len())
	var order []string
	for iv, v := range m.All() {
		order = append(order, iv.String()+"="+v)
	}
	assert.Equal(t, []string{"[1, 4)=a", "[4, 6]=b", "(6, 10]=a"}, order)
}

func TestIntervalMap_Put_CoveringRemovesBindings(t *testing.T) {
	m := newTestMap()
	m.Put(generic.All[int](), "z")

	assert.Equal(t, 1, m.Len())
	got, ok := m.Get(-100)
	require.True(t, ok)
	assert.Equal(t, "z", got)
}

func TestIntervalMap_Put_EqualValuesAreNotMerged(t *testing.T) {
	m := generic.NewOrderedIntervalMap[int, string]()
	m.Put(generic.ClosedOpen(1, 5), "a")
	m.Put(generic.Closed(5, 9), "a")

	assert.Equal(t, 2, m.Len())
}

func TestIntervalMap_Put_EmptyIntervalIsIgnored(t *testing.T) {
	m := newTestMap()
	m.Put(generic.Open(2, 2), "x")

	assert.Equal(t, 3, m.Len())
	got, _ := m.Get(2)
	assert.Equal(t, "a", got)
}

// =============================================================================
// REMOVE
// =============================================================================

func TestIntervalMap_Remove_KeepsRemainders(t *testing.T) {
	// GIVEN: [1,10]→a
	// WHEN: Removing (3,5)
	// THEN: [1,3] and [5,10] stay bound, 4 is not

	m := generic.NewOrderedIntervalMap[int, string]()
	m.Put(generic.Closed(1, 10), "a")
	m.Remove(generic.Open(3, 5))

	assert.True(t, m.ContainsKey(3))
	assert.False(t, m.ContainsKey(4))
	assert.True(t, m.ContainsKey(5))
	assert.Equal(t, map[string]string{"[1, 3]": "a", "[5, 10]": "a"}, bindings(m))
}

func TestIntervalMap_Remove_Everything(t *testing.T) {
	m := newTestMap()
	m.Remove(generic.All[int]())

	assert.Equal(t, 0, m.Len())
	assert.False(t, m.ContainsKey(2))
}

// =============================================================================
// ITERATION
// =============================================================================

func TestIntervalMap_All_OrdersByPositionOnTheLine(t *testing.T) {
	// GIVEN: A point binding and a binding starting just after it
	// WHEN: Iterating
	// THEN: The point comes first, although Compare puts the excluded lower
	//       limit first

	m := generic.NewOrderedIntervalMap[int, string]()
	m.Put(generic.MoreThan(4), "after")
	m.Put(generic.Point(4), "at")

	var got []string
	for iv := range m.All() {
		got = append(got, iv.String())
	}

	assert.Equal(t, []string{"[4, 4]", "(4, ∞)"}, got)
	assert.Equal(t, 1, generic.Point(4).Compare(generic.MoreThan(4)))
}

// =============================================================================
// CUSTOM KEY DOMAIN
// =============================================================================

func TestIntervalMap_CustomDomain(t *testing.T) {
	versions := generic.Comparing[version]()
	m := generic.NewIntervalMap[version, string](versions)
	m.Put(versions.ClosedOpen(version{1, 0}, version{2, 0}), "v1")
	m.Put(versions.AtLeast(version{2, 0}), "v2")

	got, ok := m.Get(version{1, 7})
	require.True(t, ok)
	assert.Equal(t, "v1", got)

	got, ok = m.Get(version{3, 1})
	require.True(t, ok)
	assert.Equal(t, "v2", got)

	_, ok = m.Get(version{0, 9})
	assert.False(t, ok)
}
