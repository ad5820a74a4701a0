package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matst80/slask-storefront/pkg/layout"
	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/spf13/cobra"
)

var preview struct {
	width    int
	mode     string
	category string
	price    string
	sort     string
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the product grid for a selection as text columns",
	Long: `Runs a selection through the shop the same way the page does: the grid is shown
with loading placeholders first and then with the filtered and sorted products.

Example:
  storefront layout --width 800 --category gaming --sort price-asc`,
	RunE: runLayoutPreview,
}

func init() {
	f := layoutCmd.Flags()
	f.IntVar(&preview.width, "width", 1000, "container width in pixels")
	f.StringVar(&preview.mode, "mode", "", "horizontal, balanced or vertical (default from catalog config)")
	f.StringVar(&preview.category, "category", types.AllId, "category option id")
	f.StringVar(&preview.price, "price", types.AllId, "price range option id")
	f.StringVar(&preview.sort, "sort", string(types.SortFeatured), "sort option id")
}

func runLayoutPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	mode := a.catalog.Grid.Mode
	if preview.mode != "" {
		mode = layout.ParseMode(preview.mode)
	}
	grid := layout.NewGrid(layout.GridConfig[types.Product]{
		Breakpoints:      a.catalog.Grid.Breakpoints,
		PlaceholderCount: a.catalog.Grid.PlaceholderCount,
	})
	grid.Resize(preview.width)
	grid.SetMode(mode)
	grid.SetLoading(true)

	out := cmd.OutOrStdout()
	renderLayout(out, grid.Layout())

	view, err := a.shop.Select(ctx, types.Selection{
		Category: preview.category,
		Price:    preview.price,
		Sort:     string(types.ParseSortKey(preview.sort)),
	})
	if err != nil {
		return err
	}
	grid.SetItems(view.Products)
	renderLayout(out, grid.SetLoading(false))
	if view.Empty {
		fmt.Fprintln(out, "No products match the selected filters.")
	}
	return nil
}

const previewCellWidth = 24

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(previewCellWidth).
			Padding(0, 1)
	placeholderStyle = cellStyle.
				BorderForeground(lipgloss.Color("240")).
				Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func renderCell(c layout.Cell[types.Product]) string {
	if c.Placeholder || c.Item == nil {
		return placeholderStyle.Render(strings.Repeat("░", previewCellWidth-2))
	}
	p := c.Item
	price := fmt.Sprintf("%s %.2f", p.GetCurrency(), p.Price)
	if d := p.Discount(); d > 0 {
		price += fmt.Sprintf(" save %.2f", d)
	} else if p.OnSale() {
		price += " (sale)"
	}
	lines := []string{fmt.Sprintf("#%d %s", p.Id, p.Title), price}
	if p.Badge != "" {
		lines = append(lines, p.Badge)
	}
	return cellStyle.Render(strings.Join(lines, "\n"))
}

func renderLayout(w io.Writer, l layout.Layout[types.Product]) {
	state := "ready"
	if l.Loading {
		state = "loading"
	}
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d columns, %s, %s", l.ColumnCount, l.Mode, state)))

	if l.Mode == layout.Vertical {
		cells := make([]string, len(l.Flow))
		for i, c := range l.Flow {
			cells[i] = renderCell(c)
		}
		fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, cells...))
		return
	}
	columns := make([]string, len(l.Columns))
	for i, col := range l.Columns {
		cells := make([]string, len(col))
		for j, c := range col {
			cells[j] = renderCell(c)
		}
		columns[i] = lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}
