package catalog

import (
	"github.com/matst80/slask-storefront/pkg/types"
)

// FacetCounts holds the number of products each option would show.
// A count ignores the selection of its own table but applies the other filter.
type FacetCounts struct {
	Categories  map[string]int `json:"categories"`
	PriceRanges map[string]int `json:"priceRanges"`
	Total       int            `json:"total"`
}

func Facets(products []types.Product, sel types.Selection, opts *types.Options) FacetCounts {
	if opts == nil {
		opts = &types.Options{}
	}
	res := FacetCounts{
		Categories:  make(map[string]int, len(opts.Categories)),
		PriceRanges: make(map[string]int, len(opts.PriceRanges)),
	}
	category, hasCategory := opts.FindCategory(sel.Category)
	priceRange, hasPrice := opts.FindPriceRange(sel.Price)

	for i := range products {
		p := &products[i]
		inCategory := !hasCategory || category.Match(p)
		inPrice := !hasPrice || priceRange.Contains(p.Price)
		if inCategory && inPrice {
			res.Total++
		}
		if inPrice {
			for j := range opts.Categories {
				c := &opts.Categories[j]
				if types.IsAll(c.Id) || c.Match(p) {
					res.Categories[c.Id]++
				}
			}
		}
		if inCategory {
			for j := range opts.PriceRanges {
				r := &opts.PriceRanges[j]
				if types.IsAll(r.Id) || r.Contains(p.Price) {
					res.PriceRanges[r.Id]++
				}
			}
		}
	}
	return res
}
