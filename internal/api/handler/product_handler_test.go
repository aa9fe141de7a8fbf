package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

type stubCatalogService struct {
	listFn func(ctx context.Context) ([]domain.Product, error)
	getFn  func(ctx context.Context, id string) (*domain.Product, error)
}

func (s *stubCatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubCatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func TestProductHandler_List(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(&stubCatalogService{
		listFn: func(context.Context) ([]domain.Product, error) {
			return []domain.Product{
				{ID: "1", Name: "Laptop", Price: 999.99, Stock: 10},
				{ID: "2", Name: "Phone", Price: 699.99, Stock: 15},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["name"] != "Laptop" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestProductHandler_List_EmptyIsArray(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(&stubCatalogService{
		listFn: func(context.Context) ([]domain.Product, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty JSON array, got %s", got)
	}
}

func TestProductHandler_Get(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(&stubCatalogService{
		getFn: func(_ context.Context, id string) (*domain.Product, error) {
			if id != "1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Product{ID: "1", Name: "Laptop", Price: 999.99, Stock: 10}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "1" || resp["stock"] != float64(10) {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	h := NewProductHandler(&stubCatalogService{
		getFn: func(_ context.Context, id string) (*domain.Product, error) {
			return nil, &domain.ProductNotFoundError{ProductID: id}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/products/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if err == nil {
		t.Fatal("expected error to propagate to the central handler")
	}
	var nfe *domain.ProductNotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected ProductNotFoundError, got %v", err)
	}
}
