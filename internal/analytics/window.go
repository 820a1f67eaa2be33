package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	TrendAboveAverage = "Above Average"
	TrendBelowAverage = "Below Average"
	TrendAtAverage    = "Average"

	ChangeIncrease = "Increase"
	ChangeDecrease = "Decrease"
	ChangeNone     = "No Change"
)

// Ranked pairs an item with its competition rank.
type Ranked[T any] struct {
	Rank int `json:"rank"`
	Item T   `json:"item"`
}

// Rank sorts items by measure (descending unless ascending is set) and
// assigns standard competition ranks: ties share a rank and the next
// distinct value takes its 1-based position, so a two-way tie at rank 1 is
// followed by rank 3, not 2.
func Rank[T any](items []T, measure func(T) int64, ascending bool) []Ranked[T] {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return measure(sorted[i]) < measure(sorted[j])
		}
		return measure(sorted[i]) > measure(sorted[j])
	})

	out := make([]Ranked[T], len(sorted))
	for i, item := range sorted {
		rank := i + 1
		if i > 0 && measure(item) == measure(sorted[i-1]) {
			rank = out[i-1].Rank
		}
		out[i] = Ranked[T]{Rank: rank, Item: item}
	}
	return out
}

// TopN truncates a ranked list to at most n entries.
func TopN[T any](ranked []Ranked[T], n int) []Ranked[T] {
	if n > 0 && len(ranked) > n {
		return ranked[:n]
	}
	return ranked
}

// CumulativePoint carries an item plus its prefix aggregates.
type CumulativePoint[T any] struct {
	Item         T       `json:"item"`
	RunningTotal int64   `json:"running_total"`
	MovingAvg    float64 `json:"moving_avg"`
}

// RunningTotals computes, for a series already aggregated to one row per
// time bucket and sorted ascending, the running total of measure and the
// moving average of secondary over rows 0..i. Single pass, one accumulator.
func RunningTotals[T any](items []T, measure func(T) int64, secondary func(T) float64) []CumulativePoint[T] {
	out := make([]CumulativePoint[T], len(items))
	var total int64
	var secondarySum float64
	for i, item := range items {
		total += measure(item)
		secondarySum += secondary(item)
		out[i] = CumulativePoint[T]{
			Item:         item,
			RunningTotal: total,
			MovingAvg:    secondarySum / float64(i+1),
		}
	}
	return out
}

// VariancePoint labels an item against its partition average.
type VariancePoint[T any] struct {
	Item         T       `json:"item"`
	PartitionAvg float64 `json:"partition_avg"`
	DiffFromAvg  float64 `json:"diff_from_avg"`
	AvgChange    string  `json:"avg_change"`
}

// VsAverage computes each partition's mean of measure once, then labels
// every row by strict comparison against that mean. Input order is kept.
func VsAverage[T any, K comparable](items []T, partition func(T) K, measure func(T) int64) []VariancePoint[T] {
	type acc struct {
		sum   int64
		count int
	}
	accs := make(map[K]*acc)
	for _, item := range items {
		k := partition(item)
		a, ok := accs[k]
		if !ok {
			a = &acc{}
			accs[k] = a
		}
		a.sum += measure(item)
		a.count++
	}

	out := make([]VariancePoint[T], len(items))
	for i, item := range items {
		a := accs[partition(item)]
		avg := float64(a.sum) / float64(a.count)
		value := float64(measure(item))
		label := TrendAtAverage
		switch {
		case value > avg:
			label = TrendAboveAverage
		case value < avg:
			label = TrendBelowAverage
		}
		out[i] = VariancePoint[T]{
			Item:         item,
			PartitionAvg: avg,
			DiffFromAvg:  value - avg,
			AvgChange:    label,
		}
	}
	return out
}

// YoYPoint carries an item plus its prior-bucket comparison.
type YoYPoint[T any] struct {
	Item     T      `json:"item"`
	Previous int64  `json:"previous"`
	Diff     int64  `json:"diff"`
	Change   string `json:"change"`
}

// YearOverYear pairs each row with the previous row of the same partition.
// Items must already be sorted ascending by bucket within each partition;
// the first row of a partition compares against a previous of 0, never a
// missing value. One pass, input order kept.
func YearOverYear[T any, K comparable](items []T, partition func(T) K, measure func(T) int64) []YoYPoint[T] {
	last := make(map[K]int64)
	out := make([]YoYPoint[T], len(items))
	for i, item := range items {
		k := partition(item)
		previous := last[k]
		value := measure(item)
		label := ChangeNone
		switch {
		case value > previous:
			label = ChangeIncrease
		case value < previous:
			label = ChangeDecrease
		}
		out[i] = YoYPoint[T]{
			Item:     item,
			Previous: previous,
			Diff:     value - previous,
			Change:   label,
		}
		last[k] = value
	}
	return out
}

// SharePoint carries an item plus its share of the whole.
type SharePoint[T any] struct {
	Item       T       `json:"item"`
	Total      int64   `json:"total"`
	GrandTotal int64   `json:"grand_total"`
	Percentage float64 `json:"percentage"`
}

// PartToWhole divides each group total by the grand total (computed once
// over the whole set) and rounds the percentage to 2 decimal places,
// half away from zero like SQL ROUND.
func PartToWhole[T any](items []T, measure func(T) int64) []SharePoint[T] {
	var grand int64
	for _, item := range items {
		grand += measure(item)
	}

	out := make([]SharePoint[T], len(items))
	for i, item := range items {
		value := measure(item)
		var pct float64
		if grand != 0 {
			pct = decimal.NewFromInt(value).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(grand)).
				Round(2).
				InexactFloat64()
		}
		out[i] = SharePoint[T]{
			Item:       item,
			Total:      value,
			GrandTotal: grand,
			Percentage: pct,
		}
	}
	return out
}
