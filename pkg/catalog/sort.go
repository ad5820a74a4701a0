package catalog

import (
	"cmp"
	"slices"

	"github.com/matst80/slask-storefront/pkg/types"
)

type compareFunc func(a, b *types.Product) int

var comparers = map[types.SortKey]compareFunc{
	types.SortPriceAsc: func(a, b *types.Product) int {
		return cmp.Compare(a.Price, b.Price)
	},
	types.SortPriceDesc: func(a, b *types.Product) int {
		return cmp.Compare(b.Price, a.Price)
	},
	types.SortRating: func(a, b *types.Product) int {
		return cmp.Compare(b.GetRating(), a.GetRating())
	},
	types.SortNewest: func(a, b *types.Product) int {
		return cmp.Compare(b.Created, a.Created)
	},
}

// Sort orders products in place. The sort is stable and featured keeps the given order.
func Sort(products []types.Product, key types.SortKey) {
	fn, ok := comparers[key]
	if !ok {
		return
	}
	slices.SortStableFunc(products, func(a, b types.Product) int {
		return fn(&a, &b)
	})
}

// Sorted returns a sorted copy.
func Sorted(products []types.Product, key types.SortKey) []types.Product {
	result := slices.Clone(products)
	Sort(result, key)
	return result
}
