package dates_test

import (
	"encoding/json"
	"testing"
	"time"

	"hr-assistant/internal/dates"

	"github.com/stretchr/testify/assert"
)

func TestResolveTriple(t *testing.T) {
	day := func(d int) dates.Date { return dates.New(2026, time.January, d) }
	n := func(v int) *int { return &v }
	dp := func(d dates.Date) *dates.Date { return &d }

	t.Run("start and days derive end", func(t *testing.T) {
		start, end, days := dates.ResolveTriple(dp(day(8)), nil, n(3))
		assert.Equal(t, day(8), *start)
		assert.Equal(t, day(10), *end)
		assert.Equal(t, 3, *days)
	})

	t.Run("start and end derive days", func(t *testing.T) {
		_, _, days := dates.ResolveTriple(dp(day(8)), dp(day(10)), nil)
		assert.Equal(t, 3, *days)
	})

	t.Run("single day range", func(t *testing.T) {
		_, end, days := dates.ResolveTriple(dp(day(8)), dp(day(8)), nil)
		assert.Equal(t, day(8), *end)
		assert.Equal(t, 1, *days)
	})

	t.Run("start alone defaults to one day", func(t *testing.T) {
		start, end, days := dates.ResolveTriple(dp(day(8)), nil, nil)
		assert.Equal(t, *start, *end)
		assert.Equal(t, 1, *days)
	})

	t.Run("both end and days are trusted as-is", func(t *testing.T) {
		_, end, days := dates.ResolveTriple(dp(day(8)), dp(day(20)), n(2))
		assert.Equal(t, day(20), *end)
		assert.Equal(t, 2, *days)
	})

	t.Run("end before start is dropped", func(t *testing.T) {
		start, end, days := dates.ResolveTriple(dp(day(10)), dp(day(8)), nil)
		assert.Equal(t, day(10), *start)
		assert.Nil(t, end)
		assert.Nil(t, days)
	})

	t.Run("nothing resolvable without start", func(t *testing.T) {
		start, end, days := dates.ResolveTriple(nil, nil, n(4))
		assert.Nil(t, start)
		assert.Nil(t, end)
		assert.Equal(t, 4, *days)
	})
}

func TestResolveExpression(t *testing.T) {
	// Wednesday.
	ref := dates.New(2026, time.January, 7)

	tests := []struct {
		expr string
		want string
	}{
		{"today", "2026-01-07"},
		{"tomorrow", "2026-01-08"},
		{"day after tomorrow", "2026-01-09"},
		{"in 3 days", "2026-01-10"},
		{"in 1 day", "2026-01-08"},
		{"next monday", "2026-01-12"},
		{"next Wednesday", "2026-01-14"}, // same weekday means a week out
		{"2026-01-08", "2026-01-08"},
		{"8 Jan 2026", "2026-01-08"},
		{"Jan 8, 2026", "2026-01-08"},
		{"  Tomorrow ", "2026-01-08"},
	}

	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := dates.ResolveExpression(tc.expr, ref)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	t.Run("unrecognized", func(t *testing.T) {
		_, err := dates.ResolveExpression("sometime soon", ref)
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := dates.ResolveExpression("   ", ref)
		assert.Error(t, err)
	})
}

func TestDateJSON(t *testing.T) {
	d := dates.New(2026, time.January, 8)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-01-08"`, string(data))

	var back dates.Date
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back))
}

func TestDaysUntil(t *testing.T) {
	a := dates.New(2026, time.January, 8)
	b := dates.New(2026, time.January, 10)

	assert.Equal(t, 2, a.DaysUntil(b))
	assert.Equal(t, -2, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}
