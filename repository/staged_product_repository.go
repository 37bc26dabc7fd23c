package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"bulk-product-editor/db"
)

// ErrStoreUnavailable indicates the staging store could not be reached.
// The append is all-or-nothing, so no partial-write recovery is needed.
var ErrStoreUnavailable = errors.New("staged product store unavailable")

// StagedProductRepository handles database operations for staged products
type StagedProductRepository struct{}

// NewStagedProductRepository creates a new StagedProductRepository
func NewStagedProductRepository() *StagedProductRepository {
	return &StagedProductRepository{}
}

// Ensure StagedProductRepository implements StagedProductRepositoryInterface
var _ StagedProductRepositoryInterface = (*StagedProductRepository)(nil)

// Stage appends the given product identifiers to the staging list.
// Already-staged identifiers (and duplicates within the same call) are silently
// skipped via ON CONFLICT DO NOTHING, so staging is an idempotent union.
func (r *StagedProductRepository) Stage(ctx context.Context, productIDs []string) (int, error) {
	log.Printf("📦 Stage: staging %d product id/s", len(productIDs))

	if len(productIDs) == 0 {
		return 0, nil
	}

	// Start transaction so the append is all-or-nothing
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Printf("❌ Stage: error starting transaction: %v", err)
		return 0, fmt.Errorf("%w: failed to start transaction: %v", ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	// Build a single multi-row INSERT
	var placeholders []string
	var args []interface{}
	for i, id := range productIDs {
		placeholders = append(placeholders, fmt.Sprintf("($%d)", i+1))
		args = append(args, id)
	}

	query := fmt.Sprintf(`
		INSERT INTO staged_products (product_id)
		VALUES %s
		ON CONFLICT (product_id) DO NOTHING
	`, strings.Join(placeholders, ", "))

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("❌ Stage: error inserting staged products: %v", err)
		return 0, fmt.Errorf("%w: failed to insert staged products: %v", ErrStoreUnavailable, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		log.Printf("❌ Stage: error reading rows affected: %v", err)
		return 0, fmt.Errorf("%w: failed to read rows affected: %v", ErrStoreUnavailable, err)
	}

	// Commit transaction
	if err := tx.Commit(); err != nil {
		log.Printf("❌ Stage: error committing transaction: %v", err)
		return 0, fmt.Errorf("%w: failed to commit transaction: %v", ErrStoreUnavailable, err)
	}

	log.Printf("✓ Stage: %d new, %d already staged", inserted, len(productIDs)-int(inserted))
	return int(inserted), nil
}

// ListStaged returns all staged product identifiers
func (r *StagedProductRepository) ListStaged(ctx context.Context) ([]string, error) {
	query := `SELECT product_id FROM staged_products`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListStaged: error querying staged products: %v", err)
		return nil, fmt.Errorf("%w: failed to query staged products: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var productIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan staged product: %w", err)
		}
		productIDs = append(productIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staged products: %w", err)
	}

	log.Printf("✓ ListStaged: %d staged product/s", len(productIDs))
	return productIDs, nil
}
