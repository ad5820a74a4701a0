package types

import (
	"math"
	"slices"
)

const AllId = "all"

// IsAll reports whether an option id means "no filter".
func IsAll(id string) bool {
	return id == "" || id == AllId
}

type FilterOption struct {
	Id    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// CategoryRule selects products by price thresholds or badge. Any matching clause selects.
// Comparisons are strict.
type CategoryRule struct {
	PriceAbove *float64 `json:"priceAbove,omitempty" yaml:"priceAbove,omitempty"`
	PriceBelow *float64 `json:"priceBelow,omitempty" yaml:"priceBelow,omitempty"`
	Badge      string   `json:"badge,omitempty" yaml:"badge,omitempty"`
}

func (r *CategoryRule) Match(p *Product) bool {
	if r.PriceAbove != nil && p.Price > *r.PriceAbove {
		return true
	}
	if r.PriceBelow != nil && p.Price < *r.PriceBelow {
		return true
	}
	return r.Badge != "" && p.Badge == r.Badge
}

type CategoryOption struct {
	FilterOption `yaml:",inline"`
	Rule         *CategoryRule `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// Match uses the rule when present, otherwise compares the product category with the id.
func (c *CategoryOption) Match(p *Product) bool {
	if c.Rule != nil {
		return c.Rule.Match(p)
	}
	return p.Category == c.Id
}

// PriceRange is inclusive on both ends. A nil Max is unbounded.
type PriceRange struct {
	FilterOption `yaml:",inline"`
	Min          float64  `json:"min" yaml:"min"`
	Max          *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

func (r *PriceRange) Upper() float64 {
	if r.Max == nil {
		return math.Inf(1)
	}
	return *r.Max
}

func (r *PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Upper()
}

type Options struct {
	Categories  []CategoryOption `json:"categories" yaml:"categories"`
	PriceRanges []PriceRange     `json:"priceRanges" yaml:"priceRanges"`
	Sort        []FilterOption   `json:"sort" yaml:"sort"`
}

// FindCategory returns the option for id. A nil table has no options.
func (o *Options) FindCategory(id string) (*CategoryOption, bool) {
	if o == nil || IsAll(id) {
		return nil, false
	}
	i := slices.IndexFunc(o.Categories, func(c CategoryOption) bool { return c.Id == id })
	if i < 0 {
		return nil, false
	}
	return &o.Categories[i], true
}

func (o *Options) FindPriceRange(id string) (*PriceRange, bool) {
	if o == nil || IsAll(id) {
		return nil, false
	}
	i := slices.IndexFunc(o.PriceRanges, func(r PriceRange) bool { return r.Id == id })
	if i < 0 {
		return nil, false
	}
	return &o.PriceRanges[i], true
}

func (o *Options) HasSort(id string) bool {
	if o == nil {
		return false
	}
	return slices.ContainsFunc(o.Sort, func(s FilterOption) bool { return s.Id == id })
}

// DefaultOptions are the tables the storefront ships with.
func DefaultOptions() Options {
	return Options{
		Categories: []CategoryOption{
			{FilterOption: FilterOption{Id: AllId, Label: "All Products"}},
			{FilterOption: FilterOption{Id: "electronics", Label: "Electronics"}, Rule: &CategoryRule{PriceAbove: Float(100)}},
			{FilterOption: FilterOption{Id: "accessories", Label: "Accessories"}, Rule: &CategoryRule{PriceBelow: Float(50)}},
			{FilterOption: FilterOption{Id: "gaming", Label: "Gaming"}, Rule: &CategoryRule{Badge: "Gaming"}},
		},
		PriceRanges: []PriceRange{
			{FilterOption: FilterOption{Id: AllId, Label: "All Prices"}, Min: 0},
			{FilterOption: FilterOption{Id: "under-25", Label: "Under $25"}, Min: 0, Max: Float(25)},
			{FilterOption: FilterOption{Id: "25-50", Label: "$25 to $50"}, Min: 25, Max: Float(50)},
			{FilterOption: FilterOption{Id: "50-100", Label: "$50 to $100"}, Min: 50, Max: Float(100)},
			{FilterOption: FilterOption{Id: "over-100", Label: "Over $100"}, Min: 100},
		},
		Sort: []FilterOption{
			{Id: string(SortFeatured), Label: "Featured"},
			{Id: string(SortNewest), Label: "Newest"},
			{Id: string(SortPriceAsc), Label: "Price: Low to High"},
			{Id: string(SortPriceDesc), Label: "Price: High to Low"},
			{Id: string(SortRating), Label: "Highest Rated"},
		},
	}
}

// Selection is the current filter bar state. Empty fields mean "all".
type Selection struct {
	Category string `json:"category" schema:"category"`
	Price    string `json:"price" schema:"price"`
	Sort     string `json:"sort" schema:"sort"`
}

func DefaultSelection() Selection {
	return Selection{
		Category: AllId,
		Price:    AllId,
		Sort:     string(SortFeatured),
	}
}

func (s Selection) IsDefault() bool {
	return IsAll(s.Category) && IsAll(s.Price) && ParseSortKey(s.Sort) == SortFeatured
}
