package server

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/matst80/slask-storefront/pkg/common"
	"github.com/matst80/slask-storefront/pkg/layout"
	"github.com/matst80/slask-storefront/pkg/tracking"
	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noProductRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_product_requests_total",
		Help: "The total number of processed product list requests",
	})
	noFacetRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_facet_requests_total",
		Help: "The total number of processed facet requests",
	})
	layoutsByMode = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_layouts_total",
		Help: "The total number of grid layouts built, by mode",
	}, []string{"mode"})
)

const (
	titleLineChars  = 28
	titleLineHeight = 22
	badgeHeight     = 24
	saleHeight      = 20
)

// estimateCardHeight approximates the rendered height of a product card from the parts
// that make cards grow: wrapped title lines, a badge and a struck through price.
func estimateCardHeight(p types.Product) float64 {
	h := float64(layout.DefaultItemHeight)
	lines := int(math.Ceil(float64(utf8.RuneCountInString(p.Title)) / titleLineChars))
	if lines > 1 {
		h += float64((lines - 1) * titleLineHeight)
	}
	if p.Badge != "" {
		h += badgeHeight
	}
	if p.OnSale() {
		h += saleHeight
	}
	return h
}

func (ws *WebServer) gridConfig(mode string, cols types.ColumnSizes) layout.GridConfig[types.Product] {
	cfg := layout.GridConfig[types.Product]{
		Breakpoints:      ws.Grid.Breakpoints,
		Mode:             ws.Grid.Mode,
		PlaceholderCount: ws.Grid.PlaceholderCount,
		Estimator:        estimateCardHeight,
	}
	if mode != "" {
		cfg.Mode = layout.ParseMode(mode)
	}
	if !cols.IsZero() {
		cfg.Breakpoints = layout.BreakpointsFromSizes(cols)
	}
	return cfg
}

func productId(p types.Product) types.ProductId {
	return p.Id
}

func (ws *WebServer) productsKey(req *types.ProductRequest) string {
	return fmt.Sprintf("products:%d:%s:%s:%s:%d:%s:%d-%d-%d-%d",
		ws.Shop.Revision(), req.Category, req.Price, req.Sort, req.Width, req.Mode,
		req.Columns.Sm, req.Columns.Md, req.Columns.Lg, req.Columns.Xl)
}

func (ws *WebServer) buildProductResponse(ctx context.Context, req *types.ProductRequest) (ProductResponse, error) {
	products, err := ws.Shop.Query(ctx, req.Selection)
	if err != nil {
		return ProductResponse{}, err
	}
	if products == nil {
		products = []types.Product{}
	}
	l := layout.Arrange(products, req.Width, ws.gridConfig(req.Mode, req.Columns))
	return ProductResponse{
		Selection: req.Selection,
		Products:  products,
		Total:     len(products),
		Empty:     len(products) == 0,
		Width:     req.Width,
		Layout:    layout.MapLayout(l, productId),
	}, nil
}

func (ws *WebServer) Products(w http.ResponseWriter, r *http.Request, sessionId string, enc common.Encoder) error {
	req, err := types.GetProductRequest(r)
	if err != nil {
		return common.NewHttpError(http.StatusBadRequest, err)
	}
	noProductRequests.Inc()

	var res ProductResponse
	helper := NewCacheHelper[ProductResponse](ws.Cache, ws.CacheDuration)
	_, err = helper.Handle(r.Context(), ws.productsKey(req), &res, func() (ProductResponse, error) {
		return ws.buildProductResponse(r.Context(), req)
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	layoutsByMode.WithLabelValues(string(res.Layout.Mode)).Inc()

	if ws.Tracking != nil {
		grid := tracking.GridInfo{Width: res.Width, Columns: res.Layout.ColumnCount, Mode: string(res.Layout.Mode)}
		go ws.Tracking.TrackBrowse(sessionId, res.Selection, res.Total, grid, r)
	}

	common.PublicHeaders(w, r, "60")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(res)
}

func (ws *WebServer) GetProduct(w http.ResponseWriter, r *http.Request, sessionId string, enc common.Encoder) error {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return common.NewHttpError(http.StatusBadRequest, fmt.Errorf("invalid product id %q", r.PathValue("id")))
	}
	p, ok := ws.Shop.Get(types.ProductId(id))
	if !ok {
		return common.NewHttpError(http.StatusNotFound, fmt.Errorf("product %d not found", id))
	}
	common.PublicHeaders(w, r, "60")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(p)
}

func (ws *WebServer) Options(w http.ResponseWriter, r *http.Request, sessionId string, enc common.Encoder) error {
	common.PublicHeaders(w, r, "3600")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(OptionsResponse{
		Options: ws.Shop.Options(),
		Grid:    ws.Grid,
	})
}

func (ws *WebServer) Facets(w http.ResponseWriter, r *http.Request, sessionId string, enc common.Encoder) error {
	req, err := types.GetProductRequest(r)
	if err != nil {
		return common.NewHttpError(http.StatusBadRequest, err)
	}
	noFacetRequests.Inc()
	common.PublicHeaders(w, r, "60")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(FacetsResponse{
		Selection:   req.Selection,
		FacetCounts: ws.Shop.Facets(req.Selection),
	})
}

// Layout returns the placeholder grid shown while products are loading.
func (ws *WebServer) Layout(w http.ResponseWriter, r *http.Request, sessionId string, enc common.Encoder) error {
	req, err := types.GetLayoutRequest(r)
	if err != nil {
		return common.NewHttpError(http.StatusBadRequest, err)
	}
	cfg := ws.gridConfig(req.Mode, req.Columns)
	if req.Count > 0 {
		cfg.PlaceholderCount = req.Count
	}
	g := layout.NewGrid(cfg)
	g.Resize(req.Width)
	l := g.SetLoading(true)
	layoutsByMode.WithLabelValues(string(l.Mode)).Inc()

	common.PublicHeaders(w, r, "3600")
	w.WriteHeader(http.StatusOK)
	return enc.Encode(layout.MapLayout(l, productId))
}
