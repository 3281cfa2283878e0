/*
interval.go - Intervals over any totally-ordered value

PURPOSE:
  An Interval is a contiguous range of values with independently
  inclusive/exclusive endpoints, either of which may be absent (unbounded).
  Everything else in the module is built on this type: the IntervalMap,
  calendar periods used as specification bounds, tenure tiers.

KEY CONCEPTS:
  - Domain: supplies the ordering of T. Ordered[T]() for cmp.Ordered types,
    Comparing[T]() for types with a Compare(T) int method.
  - Bound tightness: the intersection of two intervals takes the more
    restrictive lower bound and the more restrictive upper bound. When the
    limits are equal, the bound is included only if both are.
  - Empty: equal limits with at least one excluded bound. Intersections of
    disjoint intervals are normalized to this form.

NOTATION (String):
  [1, 3]      closed
  (1, 3)      open
  (-∞, 3]     unbounded below
  [1, ∞)      unbounded above
  ∅           empty

EXAMPLE:
  a := generic.Closed(1, 10)
  b := generic.ClosedOpen(5, 20)
  a.Intersection(b)  // [5, 10]
  a.Includes(10)     // true
  b.Includes(20)     // false

SEE ALSO:
  - interval_map.go: Piecewise interval -> value bindings
  - calendar/period.go: Calendar intervals over calendar.Date
*/
package generic

import (
	"cmp"
	"fmt"
	"strings"
)

// =============================================================================
// DOMAIN - Ordering for interval limits
// =============================================================================

// Comparator orders two values: negative if a < b, zero if equal, positive if
// a > b.
type Comparator[T any] func(a, b T) int

// Comparable is implemented by values that order themselves.
type Comparable[T any] interface {
	Compare(other T) int
}

// Domain builds intervals whose limits are ordered by a Comparator.
type Domain[T any] struct {
	order Comparator[T]
}

// Ordered returns the domain of a built-in ordered type.
func Ordered[T cmp.Ordered]() Domain[T] {
	return Domain[T]{order: cmp.Compare[T]}
}

// Comparing returns the domain of a type with a Compare method.
func Comparing[T Comparable[T]]() Domain[T] {
	return Domain[T]{order: func(a, b T) int { return a.Compare(b) }}
}

// DomainOf returns a domain ordered by an explicit comparator.
func DomainOf[T any](order Comparator[T]) Domain[T] {
	return Domain[T]{order: order}
}

// Limit is one end of an interval: a value, or nothing (unbounded).
type Limit[T any] struct {
	value   T
	bounded bool
}

// At returns a limit at v.
func At[T any](v T) Limit[T] { return Limit[T]{value: v, bounded: true} }

// Unbounded returns the absent limit.
func Unbounded[T any]() Limit[T] { return Limit[T]{} }

// =============================================================================
// INTERVAL
// =============================================================================

type bound[T any] struct {
	value    T
	bounded  bool
	included bool
}

// Interval is an immutable range of T. Build it through a Domain or through
// the package-level shortcuts for cmp.Ordered types; the zero Interval is
// unbounded on both sides.
type Interval[T any] struct {
	lower bound[T]
	upper bound[T]
	order Comparator[T]
}

// New returns the interval between lower and upper. An unbounded limit is
// never included. It fails with ErrInvalidInterval if lower > upper. Equal
// limits with an excluded bound produce the empty interval.
func (d Domain[T]) New(lower Limit[T], lowerIncluded bool, upper Limit[T], upperIncluded bool) (Interval[T], error) {
	iv := Interval[T]{
		lower: bound[T]{value: lower.value, bounded: lower.bounded, included: lower.bounded && lowerIncluded},
		upper: bound[T]{value: upper.value, bounded: upper.bounded, included: upper.bounded && upperIncluded},
		order: d.order,
	}
	if lower.bounded && upper.bounded && d.order(lower.value, upper.value) > 0 {
		return Interval[T]{}, &IntervalError{
			Lower: fmt.Sprint(lower.value),
			Upper: fmt.Sprint(upper.value),
			Err:   ErrInvalidInterval,
		}
	}
	return iv, nil
}

// NewNonEmpty is New, but additionally rejects an empty pairing with
// ErrEmptyInterval.
func (d Domain[T]) NewNonEmpty(lower Limit[T], lowerIncluded bool, upper Limit[T], upperIncluded bool) (Interval[T], error) {
	iv, err := d.New(lower, lowerIncluded, upper, upperIncluded)
	if err != nil {
		return iv, err
	}
	if iv.IsEmpty() {
		return Interval[T]{}, &IntervalError{
			Lower: fmt.Sprint(lower.value),
			Upper: fmt.Sprint(upper.value),
			Err:   ErrEmptyInterval,
		}
	}
	return iv, nil
}

// The convenience constructors below panic with an *IntervalError when lower
// is above upper. Use New when the limits come from input.

// Closed returns [lower, upper].
func (d Domain[T]) Closed(lower, upper T) Interval[T] {
	return mustInterval(d.New(At(lower), true, At(upper), true))
}

// Open returns (lower, upper).
func (d Domain[T]) Open(lower, upper T) Interval[T] {
	return mustInterval(d.New(At(lower), false, At(upper), false))
}

// ClosedOpen returns [lower, upper).
func (d Domain[T]) ClosedOpen(lower, upper T) Interval[T] {
	return mustInterval(d.New(At(lower), true, At(upper), false))
}

// OpenClosed returns (lower, upper].
func (d Domain[T]) OpenClosed(lower, upper T) Interval[T] {
	return mustInterval(d.New(At(lower), false, At(upper), true))
}

// AtLeast returns [lower, ∞).
func (d Domain[T]) AtLeast(lower T) Interval[T] {
	return mustInterval(d.New(At(lower), true, Unbounded[T](), false))
}

// MoreThan returns (lower, ∞).
func (d Domain[T]) MoreThan(lower T) Interval[T] {
	return mustInterval(d.New(At(lower), false, Unbounded[T](), false))
}

// AtMost returns (-∞, upper].
func (d Domain[T]) AtMost(upper T) Interval[T] {
	return mustInterval(d.New(Unbounded[T](), false, At(upper), true))
}

// LessThan returns (-∞, upper).
func (d Domain[T]) LessThan(upper T) Interval[T] {
	return mustInterval(d.New(Unbounded[T](), false, At(upper), false))
}

// All returns (-∞, ∞).
func (d Domain[T]) All() Interval[T] {
	return Interval[T]{order: d.order}
}

// Point returns [v, v].
func (d Domain[T]) Point(v T) Interval[T] {
	return d.Closed(v, v)
}

// Empty returns an interval that includes nothing.
func (d Domain[T]) Empty() Interval[T] {
	var zero T
	return d.emptyAt(zero)
}

func (d Domain[T]) emptyAt(v T) Interval[T] {
	return Interval[T]{
		lower: bound[T]{value: v, bounded: true},
		upper: bound[T]{value: v, bounded: true},
		order: d.order,
	}
}

func mustInterval[T any](iv Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}
	return iv
}

// =============================================================================
// SHORTCUTS - cmp.Ordered limits
// =============================================================================

func NewInterval[T cmp.Ordered](lower Limit[T], lowerIncluded bool, upper Limit[T], upperIncluded bool) (Interval[T], error) {
	return Ordered[T]().New(lower, lowerIncluded, upper, upperIncluded)
}

func NewNonEmptyInterval[T cmp.Ordered](lower Limit[T], lowerIncluded bool, upper Limit[T], upperIncluded bool) (Interval[T], error) {
	return Ordered[T]().NewNonEmpty(lower, lowerIncluded, upper, upperIncluded)
}

func Closed[T cmp.Ordered](lower, upper T) Interval[T]     { return Ordered[T]().Closed(lower, upper) }
func Open[T cmp.Ordered](lower, upper T) Interval[T]       { return Ordered[T]().Open(lower, upper) }
func ClosedOpen[T cmp.Ordered](lower, upper T) Interval[T] { return Ordered[T]().ClosedOpen(lower, upper) }
func OpenClosed[T cmp.Ordered](lower, upper T) Interval[T] { return Ordered[T]().OpenClosed(lower, upper) }
func AtLeast[T cmp.Ordered](lower T) Interval[T]           { return Ordered[T]().AtLeast(lower) }
func MoreThan[T cmp.Ordered](lower T) Interval[T]          { return Ordered[T]().MoreThan(lower) }
func AtMost[T cmp.Ordered](upper T) Interval[T]            { return Ordered[T]().AtMost(upper) }
func LessThan[T cmp.Ordered](upper T) Interval[T]          { return Ordered[T]().LessThan(upper) }
func All[T cmp.Ordered]() Interval[T]                      { return Ordered[T]().All() }
func Point[T cmp.Ordered](v T) Interval[T]                 { return Ordered[T]().Point(v) }
func Empty[T cmp.Ordered]() Interval[T]                    { return Ordered[T]().Empty() }

// =============================================================================
// ACCESSORS
// =============================================================================

func (i Interval[T]) LowerBounded() bool       { return i.lower.bounded }
func (i Interval[T]) UpperBounded() bool       { return i.upper.bounded }
func (i Interval[T]) IncludesLowerLimit() bool { return i.lower.included }
func (i Interval[T]) IncludesUpperLimit() bool { return i.upper.included }
func (i Interval[T]) LowerLimit() (T, bool)    { return i.lower.value, i.lower.bounded }
func (i Interval[T]) UpperLimit() (T, bool)    { return i.upper.value, i.upper.bounded }

// IsOpen reports whether neither limit is included.
func (i Interval[T]) IsOpen() bool { return !i.lower.included && !i.upper.included }

// IsClosed reports whether both limits are present and included.
func (i Interval[T]) IsClosed() bool { return i.lower.included && i.upper.included }

// IsEmpty reports whether the interval includes no value at all.
func (i Interval[T]) IsEmpty() bool {
	return i.lower.bounded && i.upper.bounded &&
		i.order(i.lower.value, i.upper.value) == 0 &&
		!(i.lower.included && i.upper.included)
}

// IsSingleElement reports whether the interval includes exactly one value.
func (i Interval[T]) IsSingleElement() bool {
	return i.lower.bounded && i.upper.bounded && i.IsClosed() &&
		i.order(i.lower.value, i.upper.value) == 0
}

// =============================================================================
// MEMBERSHIP
// =============================================================================

// IsBelow reports whether every member of the interval is less than v.
func (i Interval[T]) IsBelow(v T) bool {
	if !i.upper.bounded {
		return false
	}
	c := i.order(i.upper.value, v)
	return c < 0 || (c == 0 && !i.upper.included)
}

// IsAbove reports whether every member of the interval is greater than v.
func (i Interval[T]) IsAbove(v T) bool {
	if !i.lower.bounded {
		return false
	}
	c := i.order(i.lower.value, v)
	return c > 0 || (c == 0 && !i.lower.included)
}

// Includes reports whether v is a member of the interval.
func (i Interval[T]) Includes(v T) bool {
	return !i.IsEmpty() && !i.IsBelow(v) && !i.IsAbove(v)
}

// Covers reports whether every member of other is a member of i.
func (i Interval[T]) Covers(other Interval[T]) bool {
	if other.IsEmpty() {
		return true
	}
	if i.IsEmpty() {
		return false
	}
	order := i.comparator(other)
	return compareLower(order, i.lower, other.lower) <= 0 &&
		compareUpper(order, i.upper, other.upper) >= 0
}

// =============================================================================
// RELATIONS
// =============================================================================

// Intersection returns the values included by both intervals. The result is
// empty when they do not intersect.
func (i Interval[T]) Intersection(other Interval[T]) Interval[T] {
	order := i.comparator(other)
	d := Domain[T]{order: order}

	lower := i.lower
	if compareLower(order, other.lower, i.lower) > 0 {
		lower = other.lower
	}
	upper := i.upper
	if compareUpper(order, other.upper, i.upper) < 0 {
		upper = other.upper
	}
	if i.IsEmpty() || other.IsEmpty() {
		return d.emptyAt(lower.value)
	}
	if lower.bounded && upper.bounded && order(lower.value, upper.value) > 0 {
		return d.emptyAt(lower.value)
	}
	return Interval[T]{lower: lower, upper: upper, order: order}
}

// Intersects reports whether some value is included by both intervals.
func (i Interval[T]) Intersects(other Interval[T]) bool {
	return !i.Intersection(other).IsEmpty()
}

// Abuts reports whether the intervals do not intersect but meet at a shared
// limit that exactly one of them includes.
func (i Interval[T]) Abuts(other Interval[T]) bool {
	if i.IsEmpty() || other.IsEmpty() || i.Intersects(other) {
		return false
	}
	order := i.comparator(other)
	meets := func(a, b bound[T]) bool {
		return a.bounded && b.bounded && order(a.value, b.value) == 0 && a.included != b.included
	}
	return meets(i.upper, other.lower) || meets(other.upper, i.lower)
}

// Gap returns the interval strictly between two disjoint intervals. The
// result is empty when they intersect or abut.
func (i Interval[T]) Gap(other Interval[T]) Interval[T] {
	order := i.comparator(other)
	d := Domain[T]{order: order}
	if i.IsEmpty() || other.IsEmpty() || i.Intersects(other) {
		return d.Empty()
	}
	first, second := i, other
	if compareLower(order, other.lower, i.lower) < 0 {
		first, second = other, i
	}
	return Interval[T]{
		lower: bound[T]{value: first.upper.value, bounded: true, included: !first.upper.included},
		upper: bound[T]{value: second.lower.value, bounded: true, included: !second.lower.included},
		order: order,
	}
}

// Union returns the smallest interval covering both operands. It is defined
// only when they intersect or abut (or one of them is empty); ok is false
// otherwise.
func (i Interval[T]) Union(other Interval[T]) (Interval[T], bool) {
	switch {
	case i.IsEmpty():
		return other, true
	case other.IsEmpty():
		return i, true
	case !i.Intersects(other) && !i.Abuts(other):
		return Interval[T]{}, false
	}
	order := i.comparator(other)
	lower := i.lower
	if compareLower(order, other.lower, i.lower) < 0 {
		lower = other.lower
	}
	upper := i.upper
	if compareUpper(order, other.upper, i.upper) > 0 {
		upper = other.upper
	}
	return Interval[T]{lower: lower, upper: upper, order: order}, true
}

// ComplementRelativeTo returns the parts of other that i does not include, in
// ascending order: zero, one or two intervals.
func (i Interval[T]) ComplementRelativeTo(other Interval[T]) []Interval[T] {
	if other.IsEmpty() {
		return nil
	}
	if i.IsEmpty() || !i.Intersects(other) {
		return []Interval[T]{other}
	}
	order := i.comparator(other)

	var parts []Interval[T]
	if i.lower.bounded {
		below := Interval[T]{
			upper: bound[T]{value: i.lower.value, bounded: true, included: !i.lower.included},
			order: order,
		}
		if left := other.Intersection(below); !left.IsEmpty() {
			parts = append(parts, left)
		}
	}
	if i.upper.bounded {
		above := Interval[T]{
			lower: bound[T]{value: i.upper.value, bounded: true, included: !i.upper.included},
			order: order,
		}
		if right := other.Intersection(above); !right.IsEmpty() {
			parts = append(parts, right)
		}
	}
	return parts
}

// Compare orders intervals by lower limit, then by upper limit. Unbounded
// below sorts first and unbounded above sorts last; on equal limits the
// excluded bound sorts before the included one.
func (i Interval[T]) Compare(other Interval[T]) int {
	order := i.comparator(other)
	if c := compareLimits(order, i.lower, other.lower, -1); c != 0 {
		return c
	}
	return compareLimits(order, i.upper, other.upper, 1)
}

// Equal reports whether both intervals include exactly the same values.
func (i Interval[T]) Equal(other Interval[T]) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return i.IsEmpty() && other.IsEmpty()
	}
	order := i.comparator(other)
	return compareLower(order, i.lower, other.lower) == 0 &&
		compareUpper(order, i.upper, other.upper) == 0
}

func (i Interval[T]) String() string {
	if i.lower.bounded && i.upper.bounded && i.IsEmpty() {
		return "∅"
	}
	var b strings.Builder
	if !i.lower.bounded {
		b.WriteString("(-∞")
	} else {
		if i.lower.included {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprint(&b, i.lower.value)
	}
	b.WriteString(", ")
	if !i.upper.bounded {
		b.WriteString("∞)")
	} else {
		fmt.Fprint(&b, i.upper.value)
		if i.upper.included {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	}
	return b.String()
}

// =============================================================================
// BOUND COMPARISON
// =============================================================================

func (i Interval[T]) comparator(other Interval[T]) Comparator[T] {
	if i.order != nil {
		return i.order
	}
	return other.order
}

// compareLower orders lower bounds by where they start: negative when a
// admits values that b does not.
func compareLower[T any](order Comparator[T], a, b bound[T]) int {
	switch {
	case !a.bounded && !b.bounded:
		return 0
	case !a.bounded:
		return -1
	case !b.bounded:
		return 1
	}
	if c := order(a.value, b.value); c != 0 {
		return c
	}
	switch {
	case a.included == b.included:
		return 0
	case a.included:
		return -1
	default:
		return 1
	}
}

// compareUpper orders upper bounds by where they end: positive when a admits
// values that b does not.
func compareUpper[T any](order Comparator[T], a, b bound[T]) int {
	switch {
	case !a.bounded && !b.bounded:
		return 0
	case !a.bounded:
		return 1
	case !b.bounded:
		return -1
	}
	if c := order(a.value, b.value); c != 0 {
		return c
	}
	switch {
	case a.included == b.included:
		return 0
	case a.included:
		return 1
	default:
		return -1
	}
}

// compareLimits is the sort order used by Compare. unboundedSign is where an
// absent limit sorts: -1 for lower limits, 1 for upper limits.
func compareLimits[T any](order Comparator[T], a, b bound[T], unboundedSign int) int {
	switch {
	case !a.bounded && !b.bounded:
		return 0
	case !a.bounded:
		return unboundedSign
	case !b.bounded:
		return -unboundedSign
	}
	if c := order(a.value, b.value); c != 0 {
		return c
	}
	switch {
	case a.included == b.included:
		return 0
	case !a.included:
		return -1
	default:
		return 1
	}
}
