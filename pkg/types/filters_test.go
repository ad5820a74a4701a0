package types

import (
	"math"
	"testing"
)

func TestCategoryRuleIsStrict(t *testing.T) {
	opts := DefaultOptions()
	electronics, _ := opts.FindCategory("electronics")
	accessories, _ := opts.FindCategory("accessories")
	if electronics.Match(&Product{Price: 100}) {
		t.Error("Expected price 100 to not be electronics")
	}
	if !electronics.Match(&Product{Price: 100.01}) {
		t.Error("Expected price 100.01 to be electronics")
	}
	if accessories.Match(&Product{Price: 50}) {
		t.Error("Expected price 50 to not be an accessory")
	}
	if !accessories.Match(&Product{Price: 49.99}) {
		t.Error("Expected price 49.99 to be an accessory")
	}
}

func TestCategoryWithoutRuleUsesCategoryField(t *testing.T) {
	c := CategoryOption{FilterOption: FilterOption{Id: "audio"}}
	if !c.Match(&Product{Category: "audio"}) || c.Match(&Product{Category: "video"}) {
		t.Error("Expected match on category field")
	}
}

func TestPriceRangeIsInclusive(t *testing.T) {
	r := PriceRange{Min: 25, Max: Float(50)}
	for _, price := range []float64{25, 37.5, 50} {
		if !r.Contains(price) {
			t.Errorf("Expected %v to be in range", price)
		}
	}
	if r.Contains(24.99) || r.Contains(50.01) {
		t.Error("Expected prices outside the bounds to be excluded")
	}
	open := PriceRange{Min: 100}
	if !open.Contains(1e9) || !math.IsInf(open.Upper(), 1) {
		t.Error("Expected nil max to be unbounded")
	}
}

func TestFindOptionsTreatsAllAsNoFilter(t *testing.T) {
	opts := DefaultOptions()
	for _, id := range []string{"", AllId, "unknown"} {
		if _, ok := opts.FindCategory(id); ok {
			t.Errorf("Expected no category for %q", id)
		}
		if _, ok := opts.FindPriceRange(id); ok {
			t.Errorf("Expected no price range for %q", id)
		}
	}
	if r, ok := opts.FindPriceRange("50-100"); !ok || r.Min != 50 || *r.Max != 100 {
		t.Errorf("Expected 50-100 range, got %+v", r)
	}
}

func TestDefaultOptionsSortIds(t *testing.T) {
	opts := DefaultOptions()
	for _, id := range []string{"featured", "newest", "price-asc", "price-desc", "rating"} {
		if !opts.HasSort(id) {
			t.Errorf("Expected sort option %s", id)
		}
	}
	if !DefaultSelection().IsDefault() {
		t.Error("Expected default selection to be default")
	}
}

func TestParseSortKey(t *testing.T) {
	cases := map[string]SortKey{
		"price-ascending":   SortPriceAsc,
		"price-desc":        SortPriceDesc,
		"rating-descending": SortRating,
		"newest":            SortNewest,
		"":                  SortFeatured,
		"bogus":             SortFeatured,
	}
	for id, expected := range cases {
		if got := ParseSortKey(id); got != expected {
			t.Errorf("Expected %s for %q, got %s", expected, id, got)
		}
	}
}

func TestNilOptionsHaveNoEntries(t *testing.T) {
	var opts *Options
	if _, ok := opts.FindCategory("electronics"); ok {
		t.Error("Expected no category in nil table")
	}
	if _, ok := opts.FindPriceRange("under-25"); ok {
		t.Error("Expected no price range in nil table")
	}
	if opts.HasSort("rating") {
		t.Error("Expected no sort in nil table")
	}
}

func TestProductDiscount(t *testing.T) {
	p := Product{Price: 80, OriginalPrice: Float(100)}
	if p.Discount() != 20 || !p.OnSale() {
		t.Errorf("Expected discount 20 on sale, got %v", p.Discount())
	}
	higher := Product{Price: 120, OriginalPrice: Float(100)}
	if higher.Discount() != 0 || higher.OnSale() {
		t.Errorf("Expected no discount, got %v", higher.Discount())
	}
	if (&Product{Price: 5}).Discount() != 0 {
		t.Error("Expected no discount without original price")
	}
}
