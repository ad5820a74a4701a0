// Package layout splits an ordered sequence into the columns of a masonry grid.
package layout

type Mode string

const (
	// Horizontal deals items round-robin so rows read left to right.
	Horizontal Mode = "horizontal"
	// Balanced appends each item to the column with the lowest estimated height.
	Balanced Mode = "balanced"
	// Vertical leaves the sequence flat for a continuous multi-column flow.
	Vertical Mode = "vertical"
)

func ParseMode(s string) Mode {
	switch Mode(s) {
	case Balanced, Vertical:
		return Mode(s)
	}
	return Horizontal
}

// DefaultItemHeight is the approximate rendered height of a product card.
const DefaultItemHeight = 300

// HeightEstimator returns the estimated rendered height of an item.
type HeightEstimator[T any] func(item T) float64

func ConstantHeight[T any](h float64) HeightEstimator[T] {
	return func(T) float64 {
		return h
	}
}

type Columns[T any] [][]T

func makeColumns[T any](n int) Columns[T] {
	cols := make(Columns[T], max(n, 1))
	for i := range cols {
		cols[i] = []T{}
	}
	return cols
}

// RoundRobin puts the item at position i into column i mod n.
func RoundRobin[T any](items []T, n int) Columns[T] {
	cols := makeColumns[T](n)
	for i, item := range items {
		c := i % len(cols)
		cols[c] = append(cols[c], item)
	}
	return cols
}

// ShortestFirst greedily appends each item to the column with the lowest running height,
// the lowest column index winning ties. It also returns the final column heights.
func ShortestFirst[T any](items []T, n int, estimate HeightEstimator[T]) (Columns[T], []float64) {
	if estimate == nil {
		estimate = ConstantHeight[T](DefaultItemHeight)
	}
	cols := makeColumns[T](n)
	heights := make([]float64, len(cols))
	for _, item := range items {
		c := shortest(heights)
		cols[c] = append(cols[c], item)
		heights[c] += estimate(item)
	}
	return cols, heights
}

func shortest(heights []float64) int {
	idx := 0
	for i, h := range heights {
		if h < heights[idx] {
			idx = i
		}
	}
	return idx
}

// Distribute partitions items into n columns. Vertical returns nil, the caller renders the
// flat sequence. A column count below 1 is treated as 1.
func Distribute[T any](items []T, n int, mode Mode, estimate HeightEstimator[T]) Columns[T] {
	switch mode {
	case Vertical:
		return nil
	case Balanced:
		cols, _ := ShortestFirst(items, n, estimate)
		return cols
	default:
		return RoundRobin(items, n)
	}
}
