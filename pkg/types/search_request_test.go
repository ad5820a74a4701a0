package types

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetProductRequestFromQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/products?category=gaming&price=25-50&sort=price-ascending&width=720&mode=balanced&cols.sm=1&cols.xl=5&unknown=1", nil)
	pr, err := GetProductRequest(r)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pr.Category != "gaming" || pr.Price != "25-50" {
		t.Errorf("Expected gaming/25-50, got %s/%s", pr.Category, pr.Price)
	}
	if pr.Sort != string(SortPriceAsc) {
		t.Errorf("Expected normalized sort, got %s", pr.Sort)
	}
	if pr.Width != 720 || pr.Mode != "balanced" {
		t.Errorf("Expected width 720 balanced, got %d %s", pr.Width, pr.Mode)
	}
	if pr.Columns.Sm != 1 || pr.Columns.Xl != 5 || pr.Columns.Md != 0 {
		t.Errorf("Unexpected columns %+v", pr.Columns)
	}
}

func TestGetProductRequestDefaults(t *testing.T) {
	pr, err := GetProductRequest(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !pr.Selection.IsDefault() || pr.Width != 1000 {
		t.Errorf("Expected defaults, got %+v", pr)
	}
}

func TestGetProductRequestClampsValues(t *testing.T) {
	pr, err := GetProductRequest(httptest.NewRequest(http.MethodGet, "/api/products?width=-5&cols.lg=99", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pr.Width != 0 || pr.Columns.Lg != 12 {
		t.Errorf("Expected clamped values, got %d %d", pr.Width, pr.Columns.Lg)
	}
}

func TestGetProductRequestInvalidNumber(t *testing.T) {
	_, err := GetProductRequest(httptest.NewRequest(http.MethodGet, "/api/products?width=wide", nil))
	if err == nil {
		t.Error("Expected error for non numeric width")
	}
}

func TestGetProductRequestFromBody(t *testing.T) {
	body := strings.NewReader(`{"category":"accessories","sort":"rating","width":400}`)
	pr, err := GetProductRequest(httptest.NewRequest(http.MethodPost, "/api/products", body))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if pr.Category != "accessories" || pr.Price != AllId || pr.Sort != "rating" || pr.Width != 400 {
		t.Errorf("Unexpected request %+v", pr)
	}
}

func TestGetLayoutRequest(t *testing.T) {
	lr, err := GetLayoutRequest(httptest.NewRequest(http.MethodGet, "/api/layout?width=300&count=500", nil))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if lr.Width != 300 || lr.Count != 200 {
		t.Errorf("Unexpected layout request %+v", lr)
	}
}
