package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/matst80/slask-storefront/pkg/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqlRepository keeps products in a sqlite database. The position column holds the
// featured order.
type SqlRepository struct {
	db *gorm.DB
}

func OpenSqlite(path string) (*SqlRepository, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return NewSqlRepository(db)
}

func NewSqlRepository(db *gorm.DB) (*SqlRepository, error) {
	if err := db.AutoMigrate(&types.Product{}); err != nil {
		return nil, fmt.Errorf("migrate products: %w", err)
	}
	return &SqlRepository{db: db}, nil
}

func (r *SqlRepository) LoadProducts(ctx context.Context) ([]types.Product, error) {
	var products []types.Product
	if err := r.db.WithContext(ctx).Order("position asc, id asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

func (r *SqlRepository) Get(ctx context.Context, id types.ProductId) (*types.Product, error) {
	var p types.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save upserts the products. Position is taken from the slice order when unset.
func (r *SqlRepository) Save(ctx context.Context, products ...types.Product) error {
	if len(products) == 0 {
		return nil
	}
	rows := make([]types.Product, len(products))
	for i, p := range products {
		if p.Position == 0 {
			p.Position = i + 1
		}
		rows[i] = p
	}
	return r.db.WithContext(ctx).Save(&rows).Error
}

func (r *SqlRepository) Delete(ctx context.Context, ids ...types.ProductId) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&types.Product{}).Error
}

func (r *SqlRepository) Close() error {
	sqlDb, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDb.Close()
}
