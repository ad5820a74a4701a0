package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/matst80/slask-storefront/pkg/types"
)

var ErrNotFound = errors.New("not found")

// Source supplies the raw product list in featured order.
type Source interface {
	LoadProducts(ctx context.Context) ([]types.Product, error)
}

type DiskStorage struct {
	Country    string
	RootFolder string
}

func NewDiskStorage(country, rootFolder string) *DiskStorage {
	return &DiskStorage{
		Country:    country,
		RootFolder: rootFolder,
	}
}

func (ds *DiskStorage) GetFileName(name string) (string, string) {
	fileName := path.Join(ds.RootFolder, ds.Country, name)
	tmpFileName := fileName + ".tmp-" + fmt.Sprintf("%d", time.Now().UnixMilli())
	return fileName, tmpFileName
}

// StaticSource serves a fixed list, used for the built-in catalogue and in tests.
type StaticSource []types.Product

func (s StaticSource) LoadProducts(ctx context.Context) ([]types.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ret := make([]types.Product, len(s))
	copy(ret, s)
	return ret, nil
}
