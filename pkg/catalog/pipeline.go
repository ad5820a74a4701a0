// Package catalog turns the raw product list and the filter bar selection into
// the ordered list shown in the product grid.
package catalog

import (
	"github.com/matst80/slask-storefront/pkg/types"
)

// FilterAndSort applies the category filter, then the price filter, then the sort.
// Unknown ids are treated as "all" (filters) and featured (sort). The input slice is never modified.
func FilterAndSort(products []types.Product, sel types.Selection, opts *types.Options) []types.Product {
	result := make([]types.Product, 0, len(products))
	category, hasCategory := opts.FindCategory(sel.Category)
	priceRange, hasPrice := opts.FindPriceRange(sel.Price)
	for i := range products {
		p := &products[i]
		if hasCategory && !category.Match(p) {
			continue
		}
		if hasPrice && !priceRange.Contains(p.Price) {
			continue
		}
		result = append(result, *p)
	}
	Sort(result, types.ParseSortKey(sel.Sort))
	return result
}

// FilterByIds is the positional form used by callers that keep the three ids apart.
func FilterByIds(products []types.Product, categoryId, priceRangeId, sortId string, opts *types.Options) []types.Product {
	return FilterAndSort(products, types.Selection{
		Category: categoryId,
		Price:    priceRangeId,
		Sort:     sortId,
	}, opts)
}
