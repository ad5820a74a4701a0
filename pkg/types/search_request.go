package types

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/bytedance/sonic"
	"github.com/gorilla/schema"
)

// ColumnSizes are the per-size column counts of the product grid.
type ColumnSizes struct {
	Sm int `json:"sm" schema:"sm"`
	Md int `json:"md" schema:"md"`
	Lg int `json:"lg" schema:"lg"`
	Xl int `json:"xl" schema:"xl"`
}

func (c ColumnSizes) IsZero() bool {
	return c == ColumnSizes{}
}

type ProductRequest struct {
	Selection
	Width   int         `json:"width" schema:"width,default:1000"`
	Mode    string      `json:"mode" schema:"mode"`
	Columns ColumnSizes `json:"columns" schema:"cols"`
}

// LayoutRequest asks for the skeleton shape of the grid.
type LayoutRequest struct {
	Width   int         `json:"width" schema:"width,default:1000"`
	Mode    string      `json:"mode" schema:"mode"`
	Count   int         `json:"count" schema:"count,default:8"`
	Columns ColumnSizes `json:"columns" schema:"cols"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

const maxWidth = 1 << 16

func (s *ProductRequest) Sanitize() {
	s.Width = clamp(s.Width, 0, maxWidth)
	if s.Category == "" {
		s.Category = AllId
	}
	if s.Price == "" {
		s.Price = AllId
	}
	s.Sort = string(ParseSortKey(s.Sort))
	s.Columns.sanitize()
}

func (s *LayoutRequest) Sanitize() {
	s.Width = clamp(s.Width, 0, maxWidth)
	s.Count = clamp(s.Count, 0, 200)
	s.Columns.sanitize()
}

func (c *ColumnSizes) sanitize() {
	c.Sm = clamp(c.Sm, 0, 12)
	c.Md = clamp(c.Md, 0, 12)
	c.Lg = clamp(c.Lg, 0, 12)
	c.Xl = clamp(c.Xl, 0, 12)
}

func makeBaseProductRequest() *ProductRequest {
	return &ProductRequest{
		Selection: DefaultSelection(),
		Width:     1000,
	}
}

func GetProductRequest(r *http.Request) (*ProductRequest, error) {
	pr := makeBaseProductRequest()
	var err error
	if r.Method == http.MethodGet {
		err = decodeQuery(r.URL.Query(), pr)
	} else {
		err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(pr)
	}
	pr.Sanitize()
	if err != nil {
		return pr, fmt.Errorf("decode product request: %w", err)
	}
	return pr, nil
}

func GetLayoutRequest(r *http.Request) (*LayoutRequest, error) {
	lr := &LayoutRequest{Width: 1000, Count: 8}
	err := decodeQuery(r.URL.Query(), lr)
	lr.Sanitize()
	if err != nil {
		return lr, fmt.Errorf("decode layout request: %w", err)
	}
	return lr, nil
}

func decodeQuery(query url.Values, result any) error {
	return decoder.Decode(result, query)
}
