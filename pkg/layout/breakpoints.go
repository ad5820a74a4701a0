package layout

import (
	"cmp"
	"slices"

	"github.com/matst80/slask-storefront/pkg/types"
)

// Breakpoint applies Columns when the container is at least MinWidth pixels wide.
type Breakpoint struct {
	MinWidth int `json:"minWidth" yaml:"minWidth"`
	Columns  int `json:"columns" yaml:"columns"`
}

type Breakpoints []Breakpoint

// DefaultBreakpoints are tuned for the 1000px product grid container.
var DefaultBreakpoints = Breakpoints{
	{MinWidth: 950, Columns: 4},
	{MinWidth: 700, Columns: 3},
	{MinWidth: 480, Columns: 2},
	{MinWidth: 0, Columns: 1},
}

// BreakpointsFromSizes maps the named grid sizes onto the default thresholds.
// Zero sizes fall back to the default column count for that threshold.
func BreakpointsFromSizes(sizes types.ColumnSizes) Breakpoints {
	or := func(v, def int) int {
		if v > 0 {
			return v
		}
		return def
	}
	return Breakpoints{
		{MinWidth: 950, Columns: or(sizes.Xl, 4)},
		{MinWidth: 700, Columns: or(sizes.Lg, 3)},
		{MinWidth: 480, Columns: or(sizes.Md, 2)},
		{MinWidth: 0, Columns: or(sizes.Sm, 1)},
	}
}

// ColumnCount evaluates the thresholds from highest to lowest and returns the columns of
// the first one the width meets. Below every threshold the smallest configured count is used.
// The result is never below 1.
func ColumnCount(width int, bps Breakpoints) int {
	if len(bps) == 0 {
		return 1
	}
	width = max(width, 0)
	sorted := slices.SortedFunc(slices.Values(bps), func(a, b Breakpoint) int {
		return cmp.Compare(b.MinWidth, a.MinWidth)
	})
	for _, bp := range sorted {
		if width >= bp.MinWidth {
			return max(bp.Columns, 1)
		}
	}
	smallest := slices.MinFunc(bps, func(a, b Breakpoint) int {
		return cmp.Compare(a.Columns, b.Columns)
	})
	return max(smallest.Columns, 1)
}
