package server

import (
	"github.com/matst80/slask-storefront/pkg/catalog"
	"github.com/matst80/slask-storefront/pkg/config"
	"github.com/matst80/slask-storefront/pkg/layout"
	"github.com/matst80/slask-storefront/pkg/types"
)

// ProductLayout places product ids in grid cells; the products themselves are in the
// flat list of the response.
type ProductLayout = layout.Layout[types.ProductId]

type ProductResponse struct {
	Selection types.Selection `json:"selection"`
	Products  []types.Product `json:"products"`
	Total     int             `json:"total"`
	Empty     bool            `json:"empty"`
	Width     int             `json:"width"`
	Layout    ProductLayout   `json:"layout"`
}

type OptionsResponse struct {
	types.Options
	Grid config.GridSettings `json:"grid"`
}

type FacetsResponse struct {
	Selection types.Selection `json:"selection"`
	catalog.FacetCounts
}
