package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aishwarya-Deepak/FSD/internal/domain"
	"github.com/Aishwarya-Deepak/FSD/internal/repository"
	"github.com/go-chi/chi/v5"
)

type CatalogMock struct {
	products []*domain.Product
	err      error
}

func (m CatalogMock) GetAllProducts(context.Context) ([]*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m CatalogMock) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func TestListProducts_Success(t *testing.T) {
	mock := CatalogMock{
		products: []*domain.Product{
			{Name: "Laptop", Description: "A powerful laptop", Price: 64999, ImageURL: "https://example.com/laptop.jpg"},
			{Name: "Mouse", Description: "Wireless mouse", Price: 899, ImageURL: "https://example.com/mouse.jpg"},
		},
	}

	handler := NewProductHandler(mock)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/products", nil)

	handler.List(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response ProductsResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Products) != 2 {
		t.Fatalf("Expected 2 products, got %d", len(response.Products))
	}
	if response.Products[0].Name != "Laptop" {
		t.Errorf("Expected product name 'Laptop', got '%s'", response.Products[0].Name)
	}
	if response.Products[1].Price != 899 {
		t.Errorf("Expected product price 899, got %f", response.Products[1].Price)
	}
}

func TestListProducts_Empty(t *testing.T) {
	handler := NewProductHandler(CatalogMock{})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/products", nil)

	handler.List(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response ProductsResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Products == nil || len(response.Products) != 0 {
		t.Errorf("Expected empty (non-null) product list, got %v", response.Products)
	}
}

func TestListProducts_StoreFailure(t *testing.T) {
	handler := NewProductHandler(CatalogMock{err: errors.New("store outage")})
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/products", nil)

	handler.List(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	handler := NewProductHandler(CatalogMock{})

	r := chi.NewRouter()
	r.Get("/api/products/{id}", handler.Get)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/products/64f000000000000000000000", nil)

	r.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected status code %d, got %d", http.StatusNotFound, recorder.Code)
	}
}
