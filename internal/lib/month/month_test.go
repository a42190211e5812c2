package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLastN_AscendingWindow(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		n    int
		want []string
	}{
		{
			name: "mid year",
			ref:  time.Date(2025, 9, 15, 10, 30, 0, 0, time.UTC),
			n:    6,
			want: []string{"2025-04", "2025-05", "2025-06", "2025-07", "2025-08", "2025-09"},
		},
		{
			name: "window crosses year boundary",
			ref:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			n:    6,
			want: []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02"},
		},
		{
			name: "single month",
			ref:  time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
			n:    1,
			want: []string{"2025-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastN(tt.ref, tt.n))
		})
	}
}

func TestLastN_Day31DoesNotSkipShortMonths(t *testing.T) {
	// A reference date on the 31st must not roll February into March.
	ref := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	got := LastN(ref, 3)
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, got)
}

func TestFillCounts_LengthInvariantOnEmptyData(t *testing.T) {
	labels := LastN(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 6)

	counts := FillCounts(labels, map[string]int{})

	assert.Len(t, labels, 6)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, counts)
}

func TestFillCounts_AlignsSparseMonths(t *testing.T) {
	ref := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	labels := LastN(ref, 6)

	counts := FillCounts(labels, map[string]int{
		"2025-09": 1,          // current month
		"2025-05": 3,          // middle of the window
		"2024-12": 99,         // outside the window, ignored
		Key(ref.AddDate(0, -1, 0)): 0,
	})

	assert.Equal(t, []int{0, 3, 0, 0, 0, 1}, counts)
}

func TestWindowStart(t *testing.T) {
	ref := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), WindowStart(ref, 6))
}
