// Package shop holds the product list and filter selection behind the product grid.
package shop

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/matst80/slask-storefront/pkg/catalog"
	"github.com/matst80/slask-storefront/pkg/storage"
	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

// ErrSuperseded is returned by Select when a newer selection replaced it while waiting.
var ErrSuperseded = errors.New("selection superseded")

type Config struct {
	// Latency is the simulated fetch delay applied before a result is produced.
	Latency time.Duration
	Logger  *zap.Logger
}

type View struct {
	Selection types.Selection `json:"selection"`
	Products  []types.Product `json:"products"`
	Loading   bool            `json:"loading"`
	Empty     bool            `json:"empty"`
	Total     int             `json:"total"`
}

type Shop struct {
	mu        sync.RWMutex
	options   types.Options
	latency   time.Duration
	logger    *zap.Logger
	products  []types.Product
	selection types.Selection
	result    []types.Product
	loading   bool
	pending   context.CancelFunc
	gen       uint64
	revision  uint64
}

func New(options types.Options, cfg Config) *Shop {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shop{
		options:   options,
		latency:   max(cfg.Latency, 0),
		logger:    logger,
		products:  []types.Product{},
		selection: types.DefaultSelection(),
		result:    []types.Product{},
	}
}

// Load replaces the raw product list with the one from the source.
func (s *Shop) Load(ctx context.Context, src storage.Source) error {
	products, err := src.LoadProducts(ctx)
	if err != nil {
		return fmt.Errorf("load catalogue: %w", err)
	}
	s.mu.Lock()
	s.products = products
	s.refreshUnsafe()
	s.mu.Unlock()
	s.logger.Info("catalogue loaded", zap.Int("products", len(products)))
	return nil
}

func (s *Shop) Options() types.Options {
	return s.options
}

func (s *Shop) refreshUnsafe() {
	s.revision++
	s.result = catalog.FilterAndSort(s.products, s.selection, &s.options)
}

func (s *Shop) viewUnsafe() View {
	return View{
		Selection: s.selection,
		Products:  slices.Clone(s.result),
		Loading:   s.loading,
		Empty:     len(s.result) == 0 && !s.loading,
		Total:     len(s.products),
	}
}

// Revision changes whenever the product list or the applied selection changes.
func (s *Shop) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Shop) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewUnsafe()
}

// Select marks the shop as loading, waits the simulated latency and then applies the
// selection. A newer Select or Close cancels a pending one.
func (s *Shop) Select(ctx context.Context, sel types.Selection) (View, error) {
	s.mu.Lock()
	if s.pending != nil {
		s.pending()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.gen++
	gen := s.gen
	s.pending = cancel
	s.selection = sel
	s.loading = true
	latency := s.latency
	s.mu.Unlock()

	err := wait(ctx, latency)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return s.viewUnsafe(), ErrSuperseded
	}
	s.pending = nil
	s.loading = false
	if err != nil {
		s.logger.Debug("selection cancelled", zap.Any("selection", sel), zap.Error(err))
		return s.viewUnsafe(), err
	}
	s.refreshUnsafe()
	return s.viewUnsafe(), nil
}

// Reset clears every filter and restores the featured order.
func (s *Shop) Reset(ctx context.Context) (View, error) {
	return s.Select(ctx, types.DefaultSelection())
}

// Close cancels a pending selection.
func (s *Shop) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
}

// Query runs the pipeline for sel without touching the shop's own selection.
// It waits the simulated latency first and gives up when ctx is done.
func (s *Shop) Query(ctx context.Context, sel types.Selection) ([]types.Product, error) {
	s.mu.RLock()
	latency := s.latency
	s.mu.RUnlock()
	if err := wait(ctx, latency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.FilterAndSort(s.products, sel, &s.options), nil
}

// Products returns a copy of the unfiltered product list.
func (s *Shop) Products() []types.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

func (s *Shop) Facets(sel types.Selection) catalog.FacetCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return catalog.Facets(s.products, sel, &s.options)
}

func (s *Shop) Get(id types.ProductId) (types.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.products, func(p types.Product) bool { return p.Id == id })
	if i < 0 {
		return types.Product{}, false
	}
	return s.products[i], true
}

// Upsert replaces products with the same id in place and appends new ones.
func (s *Shop) Upsert(products ...types.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		i := slices.IndexFunc(s.products, func(o types.Product) bool { return o.Id == p.Id })
		if i < 0 {
			s.products = append(s.products, p)
		} else {
			s.products[i] = p
		}
	}
	s.refreshUnsafe()
}

func (s *Shop) Remove(ids ...types.ProductId) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = slices.DeleteFunc(s.products, func(p types.Product) bool {
		return slices.Contains(ids, p.Id)
	})
	s.refreshUnsafe()
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
