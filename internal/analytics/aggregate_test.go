package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	key    string
	order  string
	amount int64
	qty    int64
	when   *time.Time
}

func TestGroupBy_FirstSeenOrder(t *testing.T) {
	rows := []row{
		{key: "bikes"}, {key: "clothing"}, {key: "bikes"}, {key: "accessories"}, {key: "clothing"},
	}

	groups := GroupBy(rows, func(r row) string { return r.key })

	require.Len(t, groups, 3)
	assert.Equal(t, "bikes", groups[0].Key)
	assert.Equal(t, "clothing", groups[1].Key)
	assert.Equal(t, "accessories", groups[2].Key)
	assert.Len(t, groups[0].Items, 2)
	assert.Len(t, groups[1].Items, 2)
	assert.Len(t, groups[2].Items, 1)
}

func TestSumAndDistinctCount(t *testing.T) {
	rows := []row{
		{order: "SO1", amount: 100},
		{order: "SO1", amount: 50},
		{order: "SO2", amount: 25},
	}

	assert.Equal(t, int64(175), Sum(rows, func(r row) int64 { return r.amount }))
	assert.Equal(t, int64(2), DistinctCount(rows, func(r row) string { return r.order }))
}

func TestMinMaxTime_SkipsNils(t *testing.T) {
	early := date(2022, time.January, 5)
	late := date(2024, time.June, 30)
	rows := []row{
		{when: nil},
		{when: &late},
		{when: &early},
		{when: nil},
	}

	field := func(r row) *time.Time { return r.when }
	require.NotNil(t, MinTime(rows, field))
	require.NotNil(t, MaxTime(rows, field))
	assert.Equal(t, early, *MinTime(rows, field))
	assert.Equal(t, late, *MaxTime(rows, field))

	assert.Nil(t, MinTime([]row{{when: nil}}, field))
	assert.Nil(t, MaxTime(nil, field))
}

func TestMeanRatio_AveragesPerRowRatio(t *testing.T) {
	// AVG(amount/quantity) per row, not SUM(amount)/SUM(quantity):
	// 100/1=100 and 100/4=25 average to 62.5, not 200/5=40.
	rows := []row{
		{amount: 100, qty: 1},
		{amount: 100, qty: 4},
	}

	got := MeanRatio(rows,
		func(r row) int64 { return r.amount },
		func(r row) int64 { return r.qty },
	)
	assert.InDelta(t, 62.5, got, 1e-9)
}

func TestMeanRatio_ZeroQuantityContributesNoTerm(t *testing.T) {
	rows := []row{
		{amount: 100, qty: 2},
		{amount: 999, qty: 0}, // must be skipped, never divide by zero
	}

	got := MeanRatio(rows,
		func(r row) int64 { return r.amount },
		func(r row) int64 { return r.qty },
	)
	assert.InDelta(t, 50.0, got, 1e-9)

	allZero := MeanRatio([]row{{amount: 10, qty: 0}},
		func(r row) int64 { return r.amount },
		func(r row) int64 { return r.qty },
	)
	assert.Zero(t, allZero)
}
