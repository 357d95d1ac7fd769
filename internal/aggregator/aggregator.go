// Package aggregator holds the grouping primitives and the outer-join
// combinator the stats engine builds every table from.
package aggregator

import (
	"math"

	"github.com/Aniket-Muthal/ipl-data-analytics-app/internal/model"
)

// ---- Tally: ordered sum / count by key ----

// Tally accumulates integers per key, remembering first-seen key order.
// Absent keys read as zero.
type Tally[K comparable] struct {
	keys []K
	sums map[K]int
}

// NewTally returns an empty tally.
func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{sums: make(map[K]int)}
}

// Add adds v to key k, registering k even when v is zero.
func (t *Tally[K]) Add(k K, v int) {
	if _, ok := t.sums[k]; !ok {
		t.keys = append(t.keys, k)
	}
	t.sums[k] += v
}

// Inc adds one to key k.
func (t *Tally[K]) Inc(k K) { t.Add(k, 1) }

// Get returns the total for k, or zero.
func (t *Tally[K]) Get(k K) int {
	if t == nil {
		return 0
	}
	return t.sums[k]
}

// Has reports whether k was ever added.
func (t *Tally[K]) Has(k K) bool {
	if t == nil {
		return false
	}
	_, ok := t.sums[k]
	return ok
}

// Keys returns keys in first-seen order.
func (t *Tally[K]) Keys() []K {
	if t == nil {
		return nil
	}
	return t.keys
}

// Len returns the number of keys.
func (t *Tally[K]) Len() int { return len(t.Keys()) }

// Total returns the sum over every key.
func (t *Tally[K]) Total() int {
	n := 0
	for _, k := range t.Keys() {
		n += t.sums[k]
	}
	return n
}

// Sum groups rows by key and sums val. Rows whose key func returns false are skipped.
func Sum[T any, K comparable](rows []T, key func(T) (K, bool), val func(T) int) *Tally[K] {
	t := NewTally[K]()
	for _, r := range rows {
		if k, ok := key(r); ok {
			t.Add(k, val(r))
		}
	}
	return t
}

// Count groups rows by key and counts them.
func Count[T any, K comparable](rows []T, key func(T) (K, bool)) *Tally[K] {
	return Sum(rows, key, func(T) int { return 1 })
}

// ---- Distinct: nunique by key ----

type valueSet[V comparable] struct {
	order []V
	seen  map[V]struct{}
}

// Distinct counts distinct values per key.
type Distinct[K comparable, V comparable] struct {
	keys []K
	sets map[K]*valueSet[V]
}

// NewDistinct returns an empty distinct counter.
func NewDistinct[K comparable, V comparable]() *Distinct[K, V] {
	return &Distinct[K, V]{sets: make(map[K]*valueSet[V])}
}

// Add records value v under key k.
func (d *Distinct[K, V]) Add(k K, v V) {
	s, ok := d.sets[k]
	if !ok {
		s = &valueSet[V]{seen: make(map[V]struct{})}
		d.sets[k] = s
		d.keys = append(d.keys, k)
	}
	if _, dup := s.seen[v]; !dup {
		s.seen[v] = struct{}{}
		s.order = append(s.order, v)
	}
}

// Count returns the number of distinct values under k.
func (d *Distinct[K, V]) Count(k K) int {
	if d == nil {
		return 0
	}
	if s, ok := d.sets[k]; ok {
		return len(s.order)
	}
	return 0
}

// Values returns the distinct values under k in first-seen order.
func (d *Distinct[K, V]) Values(k K) []V {
	if d == nil {
		return nil
	}
	if s, ok := d.sets[k]; ok {
		return s.order
	}
	return nil
}

// Keys returns keys in first-seen order.
func (d *Distinct[K, V]) Keys() []K {
	if d == nil {
		return nil
	}
	return d.keys
}

// Nunique groups rows by key and counts distinct val per key.
func Nunique[T any, K comparable, V comparable](rows []T, key func(T) (K, bool), val func(T) V) *Distinct[K, V] {
	d := NewDistinct[K, V]()
	for _, r := range rows {
		if k, ok := key(r); ok {
			d.Add(k, val(r))
		}
	}
	return d
}

// ---- Ratios ----

// Ratio divides without guarding the denominator: x/0 is +Inf, 0/0 is NaN.
func Ratio(num, den int) model.Rate {
	return model.Rate(float64(num) / float64(den))
}

// Percent is Ratio scaled to 100.
func Percent(num, den int) model.Rate {
	return model.Rate(float64(num) / float64(den) * 100)
}

// Overs converts a ball count to real-valued overs.
func Overs(balls int) float64 {
	return float64(balls) / 6
}

// PerOver divides runs by real-valued overs.
func PerOver(runs, balls int) model.Rate {
	return model.Rate(float64(runs) / Overs(balls))
}

// Mean returns the arithmetic mean, NaN for no values.
func Mean(vals []int) model.Rate {
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return Ratio(sum, len(vals))
}

// Round2 rounds half away from zero to two decimals. Non-finite values pass through.
func Round2(r model.Rate) model.Rate {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return r
	}
	return model.Rate(math.Round(f*100) / 100)
}
