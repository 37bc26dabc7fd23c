package service

import (
	"context"

	"bulk-product-editor/models"
)

// PlatformServiceInterface defines the contract for commerce platform operations
type PlatformServiceInterface interface {
	// FetchCatalogPage returns the first page of the catalog with attribute data attached
	FetchCatalogPage(ctx context.Context) ([]models.Product, error)
	// FetchByIDs returns the products matching the given identifiers.
	// Identifiers that no longer resolve (deleted products) are silently
	// dropped from the result, never an error.
	FetchByIDs(ctx context.Context, productIDs []string) ([]models.Product, error)
	// SetMetafields submits all entries as one batched upsert in a single
	// round trip. Per-entry rejections come back as UserErrors; the returned
	// error covers transport and request-level failures only.
	SetMetafields(ctx context.Context, entries []models.MetafieldInput) ([]models.Metafield, []models.UserError, error)
}
