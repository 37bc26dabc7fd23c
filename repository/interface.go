package repository

import (
	"context"
)

// StagedProductRepositoryInterface defines the contract for the staged product store
type StagedProductRepositoryInterface interface {
	// Stage appends every identifier not already staged. Duplicates within the
	// call or against existing rows are silently deduplicated. Returns the
	// number of newly inserted rows.
	Stage(ctx context.Context, productIDs []string) (int, error)
	// ListStaged returns all staged product identifiers; order is not
	// guaranteed to match insertion order.
	ListStaged(ctx context.Context) ([]string, error)
}
