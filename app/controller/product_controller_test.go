package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulk-product-editor/models"
	"bulk-product-editor/service"
)

// fakeCatalogPlatform serves canned catalog data for the products page
type fakeCatalogPlatform struct {
	fakePlatform
	catalog []models.Product
	byID    map[string]models.Product
}

func (f *fakeCatalogPlatform) FetchCatalogPage(ctx context.Context) ([]models.Product, error) {
	return f.catalog, nil
}

func (f *fakeCatalogPlatform) FetchByIDs(ctx context.Context, productIDs []string) ([]models.Product, error) {
	// Unresolvable identifiers are dropped, mirroring the platform contract
	products := make([]models.Product, 0, len(productIDs))
	for _, id := range productIDs {
		if p, ok := f.byID[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// fakeStagedRepo is an in-memory staged product store
type fakeStagedRepo struct {
	staged []string
}

func (f *fakeStagedRepo) Stage(ctx context.Context, productIDs []string) (int, error) {
	inserted := 0
	for _, id := range productIDs {
		exists := false
		for _, s := range f.staged {
			if s == id {
				exists = true
				break
			}
		}
		if !exists {
			f.staged = append(f.staged, id)
			inserted++
		}
	}
	return inserted, nil
}

func (f *fakeStagedRepo) ListStaged(ctx context.Context) ([]string, error) {
	return f.staged, nil
}

// TestGetProductsReturnsCatalogAndStagedSubset verifies the page-load payload
// carries both collections and drops unresolvable staged identifiers.
func TestGetProductsReturnsCatalogAndStagedSubset(t *testing.T) {
	catalog := []models.Product{
		{ID: "gid://shopify/Product/1", Title: "Red Hoodie"},
		{ID: "gid://shopify/Product/2", Title: "Blue Shirt"},
	}
	platform := &fakeCatalogPlatform{
		catalog: catalog,
		byID:    map[string]models.Product{catalog[0].ID: catalog[0]},
	}
	// One staged identifier resolves, one points at a deleted product
	repo := &fakeStagedRepo{staged: []string{catalog[0].ID, "gid://shopify/Product/999"}}
	stagingService := service.NewStagingService(repo, service.NewLogNotifier())
	controller := NewProductController(platform, repo, stagingService)

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	rec := httptest.NewRecorder()

	controller.GetProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.ProductsPageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Products, 2)
	require.Len(t, response.StagedProducts, 1)
	assert.Equal(t, "Red Hoodie", response.StagedProducts[0].Title)
}

// TestStageProductsCommitsSelection verifies staging the submitted selection.
func TestStageProductsCommitsSelection(t *testing.T) {
	platform := &fakeCatalogPlatform{}
	repo := &fakeStagedRepo{}
	stagingService := service.NewStagingService(repo, service.NewLogNotifier())
	controller := NewProductController(platform, repo, stagingService)

	body := `{"selectedProductIds":["gid://shopify/Product/1","gid://shopify/Product/2"]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products/staged", strings.NewReader(body))
	rec := httptest.NewRecorder()

	controller.StageProducts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []string{"gid://shopify/Product/1", "gid://shopify/Product/2"}, repo.staged)

	var response models.StageProductsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 2, response.StagedCount)
}

// TestStageProductsEmptySelectionIsNoOp verifies an empty submission returns
// 204 without touching the store.
func TestStageProductsEmptySelectionIsNoOp(t *testing.T) {
	platform := &fakeCatalogPlatform{}
	repo := &fakeStagedRepo{}
	stagingService := service.NewStagingService(repo, service.NewLogNotifier())
	controller := NewProductController(platform, repo, stagingService)

	body := `{"selectedProductIds":[]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products/staged", strings.NewReader(body))
	rec := httptest.NewRecorder()

	controller.StageProducts(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.staged)
}
