package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-storefront/pkg/config"
	"github.com/matst80/slask-storefront/pkg/layout"
	"github.com/matst80/slask-storefront/pkg/shop"
	"github.com/matst80/slask-storefront/pkg/storage"
	"github.com/matst80/slask-storefront/pkg/tracking"
	"github.com/matst80/slask-storefront/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func (c *memoryCache) Get(ctx context.Context, key string, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	if !ok {
		return ErrCacheMiss
	}
	return sonic.Unmarshal(data, out)
}

func (c *memoryCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
	c.sets++
	return nil
}

type browse struct {
	sessionId string
	sel       types.Selection
	results   int
	grid      tracking.GridInfo
}

type recordingTracking struct {
	browses chan browse
}

func (t *recordingTracking) TrackSession(sessionId string, r *http.Request) {}

func (t *recordingTracking) TrackBrowse(sessionId string, sel types.Selection, resultLen int, grid tracking.GridInfo, r *http.Request) {
	t.browses <- browse{sessionId: sessionId, sel: sel, results: resultLen, grid: grid}
}

func (t *recordingTracking) Close() error {
	return nil
}

func newTestServer(t *testing.T) *WebServer {
	t.Helper()
	cat, err := config.DefaultCatalog()
	require.NoError(t, err)
	s := shop.New(cat.Options, shop.Config{})
	require.NoError(t, s.Load(context.Background(), storage.StaticSource(storage.Fixtures())))
	return NewWebServer(s, cat.Grid, nil)
}

func get(t *testing.T, ws *WebServer, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	ws.ClientHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func ids(products []types.Product) []types.ProductId {
	ret := make([]types.ProductId, len(products))
	for i, p := range products {
		ret[i] = p.Id
	}
	return ret
}

func TestProductsDefaultSelection(t *testing.T) {
	ws := newTestServer(t)
	w := get(t, ws, "/api/products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Result().Cookies())

	res := decode[ProductResponse](t, w)
	assert.Equal(t, types.DefaultSelection(), res.Selection)
	assert.Equal(t, len(storage.Fixtures()), res.Total)
	assert.Equal(t, 1000, res.Width)
	assert.Equal(t, 4, res.Layout.ColumnCount)
	assert.Equal(t, layout.Balanced, res.Layout.Mode)
	assert.Len(t, res.Layout.Columns, 4)
	assert.Len(t, res.Layout.Cells(), res.Total)
}

func TestProductsFilterAndSort(t *testing.T) {
	ws := newTestServer(t)
	res := decode[ProductResponse](t, get(t, ws, "/api/products?category=gaming&sort=price-asc"))
	assert.Equal(t, []types.ProductId{11, 5, 2, 8}, ids(res.Products))
	assert.False(t, res.Empty)
}

func TestProductsEmptyResult(t *testing.T) {
	ws := newTestServer(t)
	w := get(t, ws, "/api/products?category=electronics&price=under-25")
	assert.Contains(t, w.Body.String(), `"products":[]`)
	res := decode[ProductResponse](t, w)
	assert.True(t, res.Empty)
	assert.Zero(t, res.Total)
}

func TestProductsVerticalFlow(t *testing.T) {
	ws := newTestServer(t)
	res := decode[ProductResponse](t, get(t, ws, "/api/products?mode=vertical&width=500"))
	assert.Equal(t, 3, res.Layout.ColumnCount)
	assert.Nil(t, res.Layout.Columns)
	require.Len(t, res.Layout.Flow, res.Total)
	for i, c := range res.Layout.Flow {
		assert.Equal(t, res.Products[i].Id, *c.Item)
	}
}

func TestProductsColumnOverride(t *testing.T) {
	ws := newTestServer(t)
	res := decode[ProductResponse](t, get(t, ws, "/api/products?mode=horizontal&cols.xl=2&width=1200"))
	assert.Equal(t, 2, res.Layout.ColumnCount)
	require.Len(t, res.Layout.Columns, 2)
	assert.Equal(t, res.Products[0].Id, *res.Layout.Columns[0][0].Item)
	assert.Equal(t, res.Products[1].Id, *res.Layout.Columns[1][0].Item)
}

func TestProductsUsesCache(t *testing.T) {
	ws := newTestServer(t)
	cache := &memoryCache{data: map[string][]byte{}}
	ws.Cache = cache

	first := get(t, ws, "/api/products?sort=rating")
	second := get(t, ws, "/api/products?sort=rating")
	assert.Equal(t, 1, cache.sets)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	ws.Shop.Remove(1)
	third := decode[ProductResponse](t, get(t, ws, "/api/products?sort=rating"))
	assert.Equal(t, 2, cache.sets)
	assert.NotContains(t, ids(third.Products), types.ProductId(1))
}

func TestProductsTracksBrowse(t *testing.T) {
	ws := newTestServer(t)
	trk := &recordingTracking{browses: make(chan browse, 1)}
	ws.Tracking = trk

	get(t, ws, "/api/products?category=accessories&width=600")
	select {
	case b := <-trk.browses:
		assert.NotEmpty(t, b.sessionId)
		assert.Equal(t, "accessories", b.sel.Category)
		assert.Equal(t, tracking.GridInfo{Width: 600, Columns: 3, Mode: "balanced"}, b.grid)
		assert.Positive(t, b.results)
	case <-time.After(5 * time.Second):
		t.Fatal("browse was not tracked")
	}
}

func TestGetProduct(t *testing.T) {
	ws := newTestServer(t)
	w := get(t, ws, "/api/products/4")
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[types.Product](t, w)
	assert.Equal(t, types.ProductId(4), p.Id)

	assert.Equal(t, http.StatusNotFound, get(t, ws, "/api/products/999").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, ws, "/api/products/abc").Code)
}

func TestOptions(t *testing.T) {
	ws := newTestServer(t)
	res := decode[OptionsResponse](t, get(t, ws, "/api/options"))
	assert.Len(t, res.Categories, 4)
	assert.Len(t, res.PriceRanges, 5)
	assert.Len(t, res.Sort, 5)
	assert.Equal(t, layout.Balanced, res.Grid.Mode)
}

func TestFacets(t *testing.T) {
	ws := newTestServer(t)
	res := decode[FacetsResponse](t, get(t, ws, "/api/facets?category=gaming"))
	assert.Equal(t, "gaming", res.Selection.Category)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 4, res.Categories["gaming"])
	assert.Equal(t, len(storage.Fixtures()), res.Categories["all"])
	assert.Equal(t, 4, res.PriceRanges["all"])
}

func TestLayoutPlaceholders(t *testing.T) {
	ws := newTestServer(t)
	w := get(t, ws, "/api/layout?width=500&count=6&mode=horizontal")
	require.Equal(t, http.StatusOK, w.Code)
	l := decode[ProductLayout](t, w)
	assert.True(t, l.Loading)
	assert.Equal(t, 3, l.ColumnCount)
	cells := l.Cells()
	require.Len(t, cells, 6)
	for _, c := range cells {
		assert.True(t, c.Placeholder)
		assert.Nil(t, c.Item)
	}
}

func TestPreflight(t *testing.T) {
	ws := newTestServer(t)
	r := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	ws.ClientHandler().ServeHTTP(w, r)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestEstimateCardHeight(t *testing.T) {
	plain := types.Product{Title: "Cable"}
	assert.Equal(t, float64(layout.DefaultItemHeight), estimateCardHeight(plain))

	tall := types.Product{Title: "A very long product title that wraps onto more lines", Badge: "Gaming", Price: 10, OriginalPrice: types.Float(20)}
	assert.Greater(t, estimateCardHeight(tall), estimateCardHeight(plain)+badgeHeight+saleHeight)
}

func TestDebugHandler(t *testing.T) {
	w := httptest.NewRecorder()
	DebugHandler(false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
