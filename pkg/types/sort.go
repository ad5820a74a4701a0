package types

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

var sortAliases = map[string]SortKey{
	"featured":          SortFeatured,
	"newest":            SortNewest,
	"price-asc":         SortPriceAsc,
	"price-ascending":   SortPriceAsc,
	"price-desc":        SortPriceDesc,
	"price-descending":  SortPriceDesc,
	"rating":            SortRating,
	"rating-desc":       SortRating,
	"rating-descending": SortRating,
}

// ParseSortKey maps a sort id to a key. Unknown ids are featured.
func ParseSortKey(id string) SortKey {
	if key, ok := sortAliases[id]; ok {
		return key
	}
	return SortFeatured
}
