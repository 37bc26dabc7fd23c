package service

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"bulk-product-editor/metrics"
	"bulk-product-editor/repository"
)

// StagingService commits a selection of catalog products into the durable
// staging list
type StagingService struct {
	repository repository.StagedProductRepositoryInterface
	notifier   Notifier
	inFlight   atomic.Bool
}

// NewStagingService creates a new StagingService
func NewStagingService(repo repository.StagedProductRepositoryInterface, notifier Notifier) *StagingService {
	return &StagingService{
		repository: repo,
		notifier:   notifier,
	}
}

// CommitSelection stages every selected product identifier and clears the
// selection on success. An empty selection is a no-op, not an error. At most
// one commit is in flight at a time; a concurrent second call returns
// ErrSubmissionInFlight without touching the store.
func (s *StagingService) CommitSelection(ctx context.Context, sel *Selection) (int, error) {
	ids := sel.SelectedIDs()
	if len(ids) == 0 {
		log.Printf("⏭️  CommitSelection: empty selection, nothing to stage")
		return 0, nil
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		log.Printf("❌ CommitSelection: rejected, a staging submission is already in flight")
		return 0, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	log.Printf("📥 CommitSelection: committing %d selected product/s", len(ids))

	inserted, err := s.repository.Stage(ctx, ids)
	if err != nil {
		s.notifier.Notify(fmt.Sprintf("Error: %v", err), true)
		return 0, fmt.Errorf("failed to stage selection: %w", err)
	}

	// The store append succeeded as a whole; the selection no longer points at
	// anything pending.
	sel.Clear()

	metrics.StagedProducts.Add(float64(inserted))
	s.notifier.Notify("Selected product/s added successfully!", false)
	log.Printf("✅ CommitSelection: staged %d product/s (%d new)", len(ids), inserted)
	return len(ids), nil
}
