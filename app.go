package main

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/matst80/slask-storefront/pkg/config"
	"github.com/matst80/slask-storefront/pkg/shop"
	"github.com/matst80/slask-storefront/pkg/storage"
	"github.com/matst80/slask-storefront/pkg/types"
	"go.uber.org/zap"
)

// productStore is where the catalogue is loaded from and written back to.
type productStore interface {
	storage.Source
	Persist(ctx context.Context, all []types.Product, removed []types.ProductId) error
	Close() error
}

type diskStore struct {
	*storage.DiskStorage
}

func (d diskStore) Persist(ctx context.Context, all []types.Product, removed []types.ProductId) error {
	return d.SaveProducts(all)
}

func (d diskStore) Close() error {
	return nil
}

type sqlStore struct {
	*storage.SqlRepository
}

func (s sqlStore) Persist(ctx context.Context, all []types.Product, removed []types.ProductId) error {
	if len(removed) > 0 {
		if err := s.Delete(ctx, removed...); err != nil {
			return err
		}
	}
	return s.Save(ctx, all...)
}

func openStore(cfg config.Config) (productStore, error) {
	if cfg.SqlitePath != "" {
		repo, err := storage.OpenSqlite(cfg.SqlitePath)
		if err != nil {
			return nil, err
		}
		return sqlStore{repo}, nil
	}
	return diskStore{storage.NewDiskStorage(cfg.Country, cfg.DataDir)}, nil
}

type app struct {
	cfg     config.Config
	catalog *config.Catalog
	store   productStore
	shop    *shop.Shop

	mu      sync.Mutex
	dirty   bool
	removed []types.ProductId
}

func loadCatalog(cfg config.Config) (*config.Catalog, error) {
	if cfg.CatalogFile != "" {
		return config.LoadCatalog(cfg.CatalogFile)
	}
	return config.DefaultCatalog()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:     cfg,
		catalog: cat,
		store:   store,
		shop:    shop.New(cat.Options, shop.Config{Latency: cfg.SimulatedLatency, Logger: logger}),
	}
	if err = a.load(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return a, nil
}

// load fills the shop from the store, falling back to the built in fixtures when the
// store has nothing yet.
func (a *app) load(ctx context.Context) error {
	products, err := a.store.LoadProducts(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("load products: %w", err)
	}
	if len(products) == 0 {
		logger.Info("no stored products, using fixtures")
		return a.shop.Load(ctx, storage.StaticSource(storage.Fixtures()))
	}
	return a.shop.Load(ctx, storage.StaticSource(products))
}

func (a *app) Upsert(products ...types.Product) {
	a.shop.Upsert(products...)
	a.mu.Lock()
	a.dirty = true
	a.mu.Unlock()
}

func (a *app) Remove(ids ...types.ProductId) {
	a.shop.Remove(ids...)
	a.mu.Lock()
	a.dirty = true
	a.removed = append(a.removed, ids...)
	a.mu.Unlock()
}

// save writes the catalogue back when messages changed it since the last save.
func (a *app) save(ctx context.Context) error {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return nil
	}
	removed := slices.Clone(a.removed)
	a.dirty = false
	a.removed = a.removed[:0]
	a.mu.Unlock()

	products := a.shop.Products()
	if err := a.store.Persist(ctx, products, removed); err != nil {
		a.mu.Lock()
		a.dirty = true
		a.removed = append(a.removed, removed...)
		a.mu.Unlock()
		return fmt.Errorf("save products: %w", err)
	}
	logger.Info("saved products", zap.Int("products", len(products)))
	return nil
}

func (a *app) Close() error {
	a.shop.Close()
	return a.store.Close()
}
