package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPercentRoundsHalfUp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		part  string
		whole string
		want  int
	}{
		{"150", "1000", 15},
		{"125", "1000", 13}, // 12.5 rounds up
		{"124", "1000", 12},
		{"1", "3", 33},
		{"2", "3", 67},
		{"0", "1000", 0},
	}

	for _, tc := range cases {
		got := Percent(MustParse(tc.part), MustParse(tc.whole))
		if got != tc.want {
			t.Fatalf("Percent(%s/%s) = %d, want %d", tc.part, tc.whole, got, tc.want)
		}
	}
}

func TestPercentZeroWhole(t *testing.T) {
	t.Parallel()

	if got := Percent(MustParse("10"), decimal.Zero); got != 0 {
		t.Fatalf("expected 0 for zero whole, got %d", got)
	}
	if got := Percent(MustParse("10"), MustParse("-5")); got != 0 {
		t.Fatalf("expected 0 for negative whole, got %d", got)
	}
}

func TestNonNegative(t *testing.T) {
	t.Parallel()

	if got := NonNegative(MustParse("-3.50")); !got.IsZero() {
		t.Fatalf("expected clamp to zero, got %s", got)
	}
	if got := NonNegative(MustParse("3.50")); !got.Equal(MustParse("3.50")) {
		t.Fatalf("positive values must pass through, got %s", got)
	}
}
