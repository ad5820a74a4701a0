package layout

// Cell wraps an item with its position in the source sequence. Placeholder cells
// stand in for items while the catalogue is loading.
type Cell[T any] struct {
	Index       int  `json:"index"`
	Placeholder bool `json:"placeholder,omitempty"`
	Item        *T   `json:"item,omitempty"`
}

type Layout[T any] struct {
	ColumnCount int         `json:"columnCount"`
	Mode        Mode        `json:"mode"`
	Loading     bool        `json:"loading"`
	Columns     [][]Cell[T] `json:"columns,omitempty"`
	Flow        []Cell[T]   `json:"flow,omitempty"`
}

// Cells returns every cell, column by column, or the flow when vertical.
func (l *Layout[T]) Cells() []Cell[T] {
	if l.Mode == Vertical {
		return l.Flow
	}
	ret := make([]Cell[T], 0)
	for _, col := range l.Columns {
		ret = append(ret, col...)
	}
	return ret
}

type GridConfig[T any] struct {
	Breakpoints      Breakpoints
	Mode             Mode
	PlaceholderCount int
	Estimator        HeightEstimator[T]
}

const DefaultPlaceholderCount = 8

// Grid keeps the column layout of one product grid in sync with its width, items and
// loading state. Every change rebuilds the layout from scratch. A Grid is not safe for
// concurrent use.
type Grid[T any] struct {
	cfg     GridConfig[T]
	width   int
	items   []T
	loading bool
	layout  Layout[T]
}

func NewGrid[T any](cfg GridConfig[T]) *Grid[T] {
	if len(cfg.Breakpoints) == 0 {
		cfg.Breakpoints = DefaultBreakpoints
	}
	if cfg.Mode == "" {
		cfg.Mode = Horizontal
	}
	if cfg.PlaceholderCount <= 0 {
		cfg.PlaceholderCount = DefaultPlaceholderCount
	}
	if cfg.Estimator == nil {
		cfg.Estimator = ConstantHeight[T](DefaultItemHeight)
	}
	g := &Grid[T]{cfg: cfg}
	g.rebuild()
	return g
}

func (g *Grid[T]) Resize(width int) Layout[T] {
	g.width = max(width, 0)
	return g.rebuild()
}

func (g *Grid[T]) SetItems(items []T) Layout[T] {
	g.items = items
	return g.rebuild()
}

func (g *Grid[T]) SetLoading(loading bool) Layout[T] {
	g.loading = loading
	return g.rebuild()
}

func (g *Grid[T]) SetMode(mode Mode) Layout[T] {
	g.cfg.Mode = mode
	return g.rebuild()
}

func (g *Grid[T]) Layout() Layout[T] {
	return g.layout
}

func (g *Grid[T]) cells() []Cell[T] {
	if g.loading {
		return Placeholders[T](g.cfg.PlaceholderCount)
	}
	cells := make([]Cell[T], len(g.items))
	for i := range g.items {
		cells[i] = Cell[T]{Index: i, Item: &g.items[i]}
	}
	return cells
}

// Placeholders generates n skeleton cells.
func Placeholders[T any](n int) []Cell[T] {
	cells := make([]Cell[T], max(n, 0))
	for i := range cells {
		cells[i] = Cell[T]{Index: i, Placeholder: true}
	}
	return cells
}

func (g *Grid[T]) estimateCell(c Cell[T]) float64 {
	if c.Placeholder || c.Item == nil {
		return DefaultItemHeight
	}
	return g.cfg.Estimator(*c.Item)
}

func (g *Grid[T]) rebuild() Layout[T] {
	n := ColumnCount(g.width, g.cfg.Breakpoints)
	cells := g.cells()
	l := Layout[T]{
		ColumnCount: n,
		Mode:        g.cfg.Mode,
		Loading:     g.loading,
	}
	if g.cfg.Mode == Vertical {
		l.Flow = cells
	} else {
		cols := Distribute(cells, n, g.cfg.Mode, g.estimateCell)
		l.Columns = cols
	}
	g.layout = l
	return l
}

// Arrange is the stateless form of a single Grid rebuild.
func Arrange[T any](items []T, width int, cfg GridConfig[T]) Layout[T] {
	g := NewGrid(cfg)
	g.width = max(width, 0)
	return g.SetItems(items)
}

// MapLayout converts the items of a layout while keeping its shape.
func MapLayout[T, U any](l Layout[T], fn func(T) U) Layout[U] {
	conv := func(cells []Cell[T]) []Cell[U] {
		if cells == nil {
			return nil
		}
		ret := make([]Cell[U], len(cells))
		for i, c := range cells {
			ret[i] = Cell[U]{Index: c.Index, Placeholder: c.Placeholder}
			if c.Item != nil {
				v := fn(*c.Item)
				ret[i].Item = &v
			}
		}
		return ret
	}
	ret := Layout[U]{
		ColumnCount: l.ColumnCount,
		Mode:        l.Mode,
		Loading:     l.Loading,
		Flow:        conv(l.Flow),
	}
	if l.Columns != nil {
		ret.Columns = make([][]Cell[U], len(l.Columns))
		for i, col := range l.Columns {
			ret.Columns[i] = conv(col)
		}
	}
	return ret
}
