package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"bulk-product-editor/models"
	"bulk-product-editor/service"
)

// MetafieldController handles the bulk attribute form submissions
type MetafieldController struct {
	bulkService *service.BulkAttributeService
}

// NewMetafieldController creates a new MetafieldController
func NewMetafieldController(bulkService *service.BulkAttributeService) *MetafieldController {
	return &MetafieldController{
		bulkService: bulkService,
	}
}

// AddToCartTextRequest represents the request body for the add-to-cart label form
type AddToCartTextRequest struct {
	ProductIDs    []string `json:"productIds"`
	AddToCartText string   `json:"addToCartText"`
}

// CustomNoteRequest represents the request body for the custom note form
type CustomNoteRequest struct {
	ProductIDs []string `json:"productIds"`
	CustomNote string   `json:"customNote"`
}

// StockNotificationRequest represents the request body for the stock notification form
type StockNotificationRequest struct {
	ProductIDs []string `json:"productIds"`
	Enabled    bool     `json:"enabled"`
}

// AddToCartText handles POST /api/add-to-cart-text
// Propagates the add-to-cart button label onto every submitted product
func (c *MetafieldController) AddToCartText(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddToCartText: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ AddToCartText: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AddToCartTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddToCartText: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c.apply(w, "AddToCartText", req.ProductIDs, models.KeyAddToCartText, req.AddToCartText)
}

// CustomNote handles POST /api/submit-custom-note-form
// Propagates the free-text note onto every submitted product
func (c *MetafieldController) CustomNote(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CustomNote: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CustomNote: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CustomNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CustomNote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c.apply(w, "CustomNote", req.ProductIDs, models.KeyCustomNote, req.CustomNote)
}

// StockNotification handles POST /api/submit-stock-notification-form
// Propagates the stock notification flag (stringified boolean) onto every
// submitted product
func (c *MetafieldController) StockNotification(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 StockNotification: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ StockNotification: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StockNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ StockNotification: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	c.apply(w, "StockNotification", req.ProductIDs, models.KeyStockNotificationEnabled, strconv.FormatBool(req.Enabled))
}

// apply runs the bulk propagation and maps the outcome to an HTTP response
func (c *MetafieldController) apply(w http.ResponseWriter, operation string, productIDs []string, key, value string) {
	// Deliberately not the request context: a navigation away discards the
	// pending result but must not cancel the batched write mid-flight.
	ctx := context.Background()

	outcome, err := c.bulkService.ApplyAttribute(ctx, productIDs, models.MetafieldNamespace, key, value)
	if err != nil {
		log.Printf("❌ %s: Error applying attribute: %v", operation, err)

		var userErr *service.UserErrorFailure
		switch {
		case errors.Is(err, service.ErrNoProductsSelected),
			errors.Is(err, service.ErrValueRequired),
			errors.Is(err, service.ErrInvalidBooleanValue),
			errors.Is(err, service.ErrUnknownAttributeKey):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrSubmissionInFlight):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.As(err, &userErr):
			http.Error(w, userErr.Message, http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrTransport):
			http.Error(w, fmt.Sprintf("Failed to update products: %v", err), http.StatusBadGateway)
		default:
			http.Error(w, fmt.Sprintf("Failed to update products: %v", err), http.StatusInternalServerError)
		}
		return
	}

	log.Printf("✅ %s: updated %d product/s", operation, outcome.UpdatedCount)

	response := models.BulkAttributeResponse{
		UpdatedCount: outcome.UpdatedCount,
		Notice:       fmt.Sprintf("%d product/s updated successfully!", outcome.UpdatedCount),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ %s: Error encoding response: %v", operation, err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
