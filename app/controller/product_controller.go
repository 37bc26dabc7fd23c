package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"bulk-product-editor/models"
	"bulk-product-editor/repository"
	"bulk-product-editor/service"
)

// ProductController handles HTTP requests for the products page
type ProductController struct {
	platform       service.PlatformServiceInterface
	stagedRepo     repository.StagedProductRepositoryInterface
	stagingService *service.StagingService
}

// NewProductController creates a new ProductController
func NewProductController(
	platform service.PlatformServiceInterface,
	stagedRepo repository.StagedProductRepositoryInterface,
	stagingService *service.StagingService,
) *ProductController {
	return &ProductController{
		platform:       platform,
		stagedRepo:     stagedRepo,
		stagingService: stagingService,
	}
}

// GetProducts handles GET /admin/products
// Returns the full catalog page and the staged subset. The two fetches are
// independent reads and run concurrently; both must complete before the
// displayed collections are considered ready.
func (c *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ GetProducts: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	var (
		wg        sync.WaitGroup
		products  []models.Product
		staged    []models.Product
		pageErr   error
		stagedErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		products, pageErr = c.platform.FetchCatalogPage(ctx)
	}()
	go func() {
		defer wg.Done()
		stagedIDs, err := c.stagedRepo.ListStaged(ctx)
		if err != nil {
			stagedErr = err
			return
		}
		staged, stagedErr = c.platform.FetchByIDs(ctx, stagedIDs)
	}()
	wg.Wait()

	if pageErr != nil {
		log.Printf("❌ GetProducts: Error fetching catalog page: %v", pageErr)
		http.Error(w, fmt.Sprintf("Failed to fetch products: %v", pageErr), http.StatusBadGateway)
		return
	}
	if stagedErr != nil {
		log.Printf("❌ GetProducts: Error fetching staged products: %v", stagedErr)
		status := http.StatusBadGateway
		if errors.Is(stagedErr, repository.ErrStoreUnavailable) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, fmt.Sprintf("Failed to fetch staged products: %v", stagedErr), status)
		return
	}

	log.Printf("✅ GetProducts: %d catalog product/s, %d staged product/s", len(products), len(staged))

	response := models.ProductsPageResponse{
		Products:       products,
		StagedProducts: staged,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ GetProducts: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// StageProducts handles POST /admin/products/staged
// Commits the submitted selection into the durable staging list
func (c *ProductController) StageProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 StageProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ StageProducts: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.StageProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ StageProducts: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// Empty submission is a caller-side no-op, not an error
	if len(req.SelectedProductIDs) == 0 {
		log.Printf("⏭️  StageProducts: empty selection, nothing to stage")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Reconstruct the modal's selection instance from the submitted identifiers
	displayed := make([]models.Product, 0, len(req.SelectedProductIDs))
	for _, id := range req.SelectedProductIDs {
		displayed = append(displayed, models.Product{ID: id})
	}
	sel := service.NewSelection(displayed)
	sel.SelectAll()

	// Deliberately not the request context: a navigation away discards the
	// pending result but must not cancel the append mid-flight.
	ctx := context.Background()

	count, err := c.stagingService.CommitSelection(ctx, sel)
	if err != nil {
		log.Printf("❌ StageProducts: Error committing selection: %v", err)
		switch {
		case errors.Is(err, service.ErrSubmissionInFlight):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, repository.ErrStoreUnavailable):
			http.Error(w, fmt.Sprintf("Failed to stage products: %v", err), http.StatusServiceUnavailable)
		default:
			http.Error(w, fmt.Sprintf("Failed to stage products: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ StageProducts: staged %d product/s", count)

	response := models.StageProductsResponse{
		StagedCount: count,
		Notice:      "Selected product/s added successfully!",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ StageProducts: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
