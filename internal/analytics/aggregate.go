package analytics

import "time"

// Group is one aggregation bucket. Items keep the order they arrived in.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy buckets items by an arbitrary key function. Groups come back in
// first-seen order; callers needing a specific order sort afterwards.
func GroupBy[K comparable, T any](items []T, key func(T) K) []Group[K, T] {
	index := make(map[K]int)
	groups := make([]Group[K, T], 0)
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Sum folds a single int64 measure.
func Sum[T any](items []T, measure func(T) int64) int64 {
	var total int64
	for _, item := range items {
		total += measure(item)
	}
	return total
}

// DistinctCount counts distinct values of a secondary field, e.g. distinct
// order numbers per product or distinct customer keys per product.
func DistinctCount[T any, V comparable](items []T, field func(T) V) int64 {
	seen := make(map[V]struct{}, len(items))
	for _, item := range items {
		seen[field(item)] = struct{}{}
	}
	return int64(len(seen))
}

// MinTime returns the earliest non-nil time, or nil when none exists.
func MinTime[T any](items []T, field func(T) *time.Time) *time.Time {
	var min *time.Time
	for _, item := range items {
		t := field(item)
		if t == nil {
			continue
		}
		if min == nil || t.Before(*min) {
			min = t
		}
	}
	return min
}

// MaxTime returns the latest non-nil time, or nil when none exists.
func MaxTime[T any](items []T, field func(T) *time.Time) *time.Time {
	var max *time.Time
	for _, item := range items {
		t := field(item)
		if t == nil {
			continue
		}
		if max == nil || t.After(*max) {
			max = t
		}
	}
	return max
}

// MeanRatio averages the per-row ratio num/den, not the ratio of the sums.
// Rows with a zero denominator contribute no term, mirroring
// AVG(num / NULLIF(den, 0)): they neither raise nor drag the average.
func MeanRatio[T any](items []T, num func(T) int64, den func(T) int64) float64 {
	var sum float64
	var n int
	for _, item := range items {
		d := den(item)
		if d == 0 {
			continue
		}
		sum += float64(num(item)) / float64(d)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
