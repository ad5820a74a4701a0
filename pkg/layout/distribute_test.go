package layout

import (
	"slices"
	"testing"
)

func sequence(n int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = i
	}
	return ret
}

func TestRoundRobinSevenIntoThree(t *testing.T) {
	cols := RoundRobin(sequence(7), 3)
	expected := [][]int{{0, 3, 6}, {1, 4}, {2, 5}}
	if len(cols) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(cols))
	}
	for i := range expected {
		if !slices.Equal(cols[i], expected[i]) {
			t.Errorf("column %d: expected %v, got %v", i, expected[i], cols[i])
		}
	}
}

func TestRoundRobinPlacement(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for count := 0; count <= 25; count++ {
			cols := RoundRobin(sequence(count), n)
			total := 0
			for c, col := range cols {
				size := len(col)
				if size != count/n && size != (count+n-1)/n {
					t.Errorf("n=%d count=%d: column %d has %d items", n, count, c, size)
				}
				for _, item := range col {
					if item%n != c {
						t.Errorf("n=%d: item %d in column %d", n, item, c)
					}
				}
				total += size
			}
			if total != count {
				t.Errorf("n=%d: expected %d items, got %d", n, count, total)
			}
		}
	}
}

func TestShortestFirstPicksMinimum(t *testing.T) {
	heights := []float64{120, 80, 300, 40, 200, 60, 90}
	estimate := func(i int) float64 { return heights[i] }
	cols, final := ShortestFirst(sequence(len(heights)), 3, estimate)

	// replay the placement and check every step took the lowest column
	running := make([]float64, 3)
	pos := make([]int, 3)
	for item := range heights {
		col := -1
		for c := range cols {
			if pos[c] < len(cols[c]) && cols[c][pos[c]] == item {
				col = c
				break
			}
		}
		if col < 0 {
			t.Fatalf("item %d not found in order", item)
		}
		if running[col] != slices.Min(running) {
			t.Errorf("item %d placed in column %d with height %v, min was %v", item, col, running[col], slices.Min(running))
		}
		if first := slices.Index(running, slices.Min(running)); first != col {
			t.Errorf("item %d: tie should go to column %d, got %d", item, first, col)
		}
		running[col] += heights[item]
		pos[col]++
	}
	if !slices.Equal(running, final) {
		t.Errorf("Expected heights %v, got %v", running, final)
	}
}

func TestShortestFirstBalance(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for count := 0; count <= 30; count++ {
			_, heights := ShortestFirst(sequence(count), n, ConstantHeight[int](DefaultItemHeight))
			if spread := slices.Max(heights) - slices.Min(heights); spread > DefaultItemHeight {
				t.Errorf("n=%d count=%d: spread %v", n, count, spread)
			}
		}
	}
}

func TestShortestFirstConstantMatchesRoundRobin(t *testing.T) {
	balanced, _ := ShortestFirst(sequence(11), 4, nil)
	robin := RoundRobin(sequence(11), 4)
	for i := range robin {
		if !slices.Equal(balanced[i], robin[i]) {
			t.Errorf("column %d: expected %v, got %v", i, robin[i], balanced[i])
		}
	}
}

func TestDistributeEmptyAndClamped(t *testing.T) {
	cols := Distribute([]int{}, 3, Horizontal, nil)
	if len(cols) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(cols))
	}
	for i, col := range cols {
		if col == nil || len(col) != 0 {
			t.Errorf("column %d should be empty, got %v", i, col)
		}
	}
	cols = Distribute(sequence(4), 0, Balanced, nil)
	if len(cols) != 1 || len(cols[0]) != 4 {
		t.Errorf("Expected one column of 4, got %v", cols)
	}
}

func TestDistributeVerticalBypasses(t *testing.T) {
	if cols := Distribute(sequence(5), 3, Vertical, nil); cols != nil {
		t.Errorf("Expected no columns, got %v", cols)
	}
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"balanced": Balanced, "vertical": Vertical, "horizontal": Horizontal, "": Horizontal, "masonry": Horizontal}
	for in, expected := range cases {
		if got := ParseMode(in); got != expected {
			t.Errorf("%q: expected %s, got %s", in, expected, got)
		}
	}
}
