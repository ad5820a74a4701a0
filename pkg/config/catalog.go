package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"github.com/matst80/slask-storefront/pkg/layout"
	"github.com/matst80/slask-storefront/pkg/types"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type GridSettings struct {
	Mode             layout.Mode        `yaml:"mode" json:"mode"`
	PlaceholderCount int                `yaml:"placeholderCount" json:"placeholderCount"`
	Breakpoints      layout.Breakpoints `yaml:"breakpoints" json:"breakpoints"`
}

type Catalog struct {
	types.Options `yaml:",inline"`
	Grid          GridSettings `yaml:"grid" json:"grid"`
}

// DefaultCatalog returns the embedded option tables.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

func LoadCatalog(fileName string) (*Catalog, error) {
	if fileName == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("read catalog config: %w", err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse catalog config: %w", err)
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) normalize() error {
	for i := range c.PriceRanges {
		r := &c.PriceRanges[i]
		if r.Max != nil && math.IsInf(*r.Max, 1) {
			r.Max = nil
		}
		if r.Max != nil && *r.Max < r.Min {
			return fmt.Errorf("price range %q: max %v below min %v", r.Id, *r.Max, r.Min)
		}
	}
	c.Grid.Mode = layout.ParseMode(string(c.Grid.Mode))
	if c.Grid.PlaceholderCount <= 0 {
		c.Grid.PlaceholderCount = layout.DefaultPlaceholderCount
	}
	if len(c.Grid.Breakpoints) == 0 {
		c.Grid.Breakpoints = layout.DefaultBreakpoints
	}
	if len(c.Sort) == 0 {
		c.Sort = types.DefaultOptions().Sort
	}
	return nil
}
