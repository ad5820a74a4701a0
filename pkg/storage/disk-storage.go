package storage

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/matst80/slask-storefront/pkg/types"
)

const productsFile = "products.json"

func (d *DiskStorage) LoadProducts(ctx context.Context) ([]types.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	products := make([]types.Product, 0)
	if err := d.LoadJson(&products, productsFile); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	return products, nil
}

func (d *DiskStorage) SaveProducts(products []types.Product) error {
	if err := d.SaveJson(products, productsFile); err != nil {
		return fmt.Errorf("save products: %w", err)
	}
	return nil
}

// SaveJson writes to a temp file and renames it in place. Names ending in .gz are gzipped.
func (d *DiskStorage) SaveJson(data any, name string) error {
	fileName, tmpFileName := d.GetFileName(name)
	if err := os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return err
	}

	file, err := os.Create(tmpFileName)
	if err != nil {
		return err
	}

	var w io.Writer = file
	var zipWriter *gzip.Writer
	if strings.HasSuffix(name, ".gz") {
		zipWriter = gzip.NewWriter(file)
		w = zipWriter
	}
	err = sonic.ConfigDefault.NewEncoder(w).Encode(data)
	if zipWriter != nil {
		if cerr := zipWriter.Close(); err == nil {
			err = cerr
		}
	}
	file.Close()
	if err != nil {
		os.Remove(tmpFileName)
		return err
	}

	return os.Rename(tmpFileName, fileName)
}

func (d *DiskStorage) LoadJson(data any, name string) error {
	fileName, _ := d.GetFileName(name)
	file, err := os.Open(fileName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", fileName, ErrNotFound)
		}
		return err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(name, ".gz") {
		zipReader, err := gzip.NewReader(file)
		if err != nil {
			return err
		}
		defer zipReader.Close()
		r = zipReader
	}

	err = sonic.ConfigDefault.NewDecoder(r).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
