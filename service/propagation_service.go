package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"bulk-product-editor/metrics"
	"bulk-product-editor/models"
)

// BulkAttributeService propagates one attribute value onto every selected
// product as a single batched metafield upsert
type BulkAttributeService struct {
	platform PlatformServiceInterface
	notifier Notifier
	inFlight atomic.Bool
}

// NewBulkAttributeService creates a new BulkAttributeService
func NewBulkAttributeService(platform PlatformServiceInterface, notifier Notifier) *BulkAttributeService {
	return &BulkAttributeService{
		platform: platform,
		notifier: notifier,
	}
}

// valueTypeForKey maps each attribute key written by this workflow to its
// platform value type
func valueTypeForKey(key string) (string, error) {
	switch key {
	case models.KeyAddToCartText:
		return models.TypeSingleLineText, nil
	case models.KeyCustomNote:
		return models.TypeMultiLineText, nil
	case models.KeyStockNotificationEnabled:
		return models.TypeBoolean, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownAttributeKey, key)
	}
}

// validateValue applies the per-key pre-flight rules. Runs before any network
// call; a failure here means the platform was never contacted.
func validateValue(key, value string) error {
	switch key {
	case models.KeyAddToCartText:
		if strings.TrimSpace(value) == "" {
			return ErrValueRequired
		}
	case models.KeyStockNotificationEnabled:
		if value != "true" && value != "false" {
			return ErrInvalidBooleanValue
		}
	}
	return nil
}

// ApplyAttribute writes the same (namespace, key, value) attribute onto every
// given product in exactly one batched round trip.
//
// Reconciliation: zero item errors means every entry was written and
// UpdatedCount is len(ids). One or more item errors means the first reported
// message is surfaced as the failure reason and UpdatedCount is 0 (the
// platform does not attribute errors to entries, so no partial count can be
// claimed). Transport failures are wrapped with ErrTransport. No failure path
// retries; the operator resubmits.
func (s *BulkAttributeService) ApplyAttribute(ctx context.Context, productIDs []string, namespace, key, value string) (models.BatchOutcome, error) {
	if len(productIDs) == 0 {
		return models.BatchOutcome{}, ErrNoProductsSelected
	}

	valueType, err := valueTypeForKey(key)
	if err != nil {
		return models.BatchOutcome{}, err
	}
	if err := validateValue(key, value); err != nil {
		log.Printf("❌ ApplyAttribute: pre-flight validation failed for key=%s: %v", key, err)
		return models.BatchOutcome{}, err
	}

	// Only one submission may be outstanding; a rapid double submit must not
	// produce a second batched write.
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Printf("❌ ApplyAttribute: rejected, a submission is already in flight")
		return models.BatchOutcome{}, ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	log.Printf("📥 ApplyAttribute: namespace=%s, key=%s, %d product/s", namespace, key, len(productIDs))

	// One entry per product, all sharing the same (namespace, key, value)
	entries := make([]models.MetafieldInput, 0, len(productIDs))
	for _, id := range productIDs {
		entries = append(entries, models.MetafieldInput{
			OwnerID:   id,
			Namespace: namespace,
			Key:       key,
			Value:     value,
			Type:      valueType,
		})
	}

	written, userErrors, err := s.platform.SetMetafields(ctx, entries)
	if err != nil {
		metrics.BulkWrites.WithLabelValues("transport_error").Inc()
		s.notifier.Notify(fmt.Sprintf("Error: %v", err), true)
		return models.BatchOutcome{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if len(userErrors) > 0 {
		// The batch is not atomic: entries that succeeded stay written, but
		// the flat error list gives no way to tell which ones failed.
		first := userErrors[0]
		metrics.BulkWrites.WithLabelValues("item_error").Inc()
		s.notifier.Notify(first.Message, true)
		return models.BatchOutcome{UpdatedCount: 0}, &UserErrorFailure{Message: first.Message, Code: first.Code}
	}

	metrics.BulkWrites.WithLabelValues("success").Inc()
	metrics.BulkEntries.Add(float64(len(entries)))
	s.notifier.Notify(fmt.Sprintf("%d product/s updated successfully!", len(productIDs)), false)
	log.Printf("✅ ApplyAttribute: %d metafield/s written", len(written))
	return models.BatchOutcome{UpdatedCount: len(productIDs)}, nil
}
