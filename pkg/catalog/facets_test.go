package catalog

import (
	"testing"

	"github.com/matst80/slask-storefront/pkg/types"
)

func TestFacetsIgnoreOwnSelection(t *testing.T) {
	opts := types.DefaultOptions()
	res := Facets(testProducts, types.Selection{Category: "gaming", Price: "25-50"}, &opts)
	if res.Total != 1 {
		t.Errorf("Expected total 1, got %d", res.Total)
	}
	// categories counted inside 25-50 (ids 2 and 5)
	if res.Categories["all"] != 2 || res.Categories["gaming"] != 1 || res.Categories["accessories"] != 2 {
		t.Errorf("Unexpected category counts %v", res.Categories)
	}
	// price ranges counted inside gaming (ids 3 and 5)
	if res.PriceRanges["all"] != 2 || res.PriceRanges["25-50"] != 1 || res.PriceRanges["50-100"] != 1 {
		t.Errorf("Unexpected price counts %v", res.PriceRanges)
	}
}

func TestFacetsWithoutOptionTable(t *testing.T) {
	res := Facets(testProducts, types.Selection{Category: "gaming"}, nil)
	if res.Total != len(testProducts) {
		t.Errorf("Expected total %d, got %d", len(testProducts), res.Total)
	}
	if len(res.Categories) != 0 || len(res.PriceRanges) != 0 {
		t.Errorf("Expected no option counts, got %v %v", res.Categories, res.PriceRanges)
	}
}
