package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulk-product-editor/models"
	"bulk-product-editor/repository"
)

// fakeStagedRepo is an in-memory staged product store honoring the idempotent
// union contract of the real repository
type fakeStagedRepo struct {
	staged     map[string]bool
	stageCalls int32
	failWith   error

	started chan struct{}
	release chan struct{}
}

func newFakeStagedRepo() *fakeStagedRepo {
	return &fakeStagedRepo{staged: make(map[string]bool)}
}

func (f *fakeStagedRepo) Stage(ctx context.Context, productIDs []string) (int, error) {
	atomic.AddInt32(&f.stageCalls, 1)
	if f.started != nil {
		f.started <- struct{}{}
		<-f.release
	}
	if f.failWith != nil {
		return 0, f.failWith
	}
	inserted := 0
	for _, id := range productIDs {
		if !f.staged[id] {
			f.staged[id] = true
			inserted++
		}
	}
	return inserted, nil
}

func (f *fakeStagedRepo) ListStaged(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.staged))
	for id := range f.staged {
		ids = append(ids, id)
	}
	return ids, nil
}

func selectionOf(ids ...string) *Selection {
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, models.Product{ID: id})
	}
	sel := NewSelection(products)
	sel.SelectAll()
	return sel
}

// TestCommitSelectionStagesAndClears verifies a successful commit stages the
// selected identifiers, clears the selection and raises a success notice.
func TestCommitSelectionStagesAndClears(t *testing.T) {
	repo := newFakeStagedRepo()
	notifier := NewRecordingNotifier()
	svc := NewStagingService(repo, notifier)

	sel := selectionOf("A", "B")
	count, err := svc.CommitSelection(context.Background(), sel)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 0, sel.Count(), "selection must be cleared after commit")
	assert.True(t, repo.staged["A"])
	assert.True(t, repo.staged["B"])

	notice, ok := notifier.Last()
	require.True(t, ok)
	assert.False(t, notice.IsError)
	assert.Equal(t, "Selected product/s added successfully!", notice.Message)
}

// TestCommitSelectionIdempotentUnion verifies overlapping commits yield the
// union of staged identifiers with no duplicates and no error.
func TestCommitSelectionIdempotentUnion(t *testing.T) {
	repo := newFakeStagedRepo()
	svc := NewStagingService(repo, NewRecordingNotifier())

	_, err := svc.CommitSelection(context.Background(), selectionOf("A", "B"))
	require.NoError(t, err)

	count, err := svc.CommitSelection(context.Background(), selectionOf("B", "C"))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	staged, err := repo.ListStaged(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, staged)
}

// TestCommitSelectionEmptyIsNoOp verifies an empty selection never reaches the
// store and is not an error.
func TestCommitSelectionEmptyIsNoOp(t *testing.T) {
	repo := newFakeStagedRepo()
	notifier := NewRecordingNotifier()
	svc := NewStagingService(repo, notifier)

	sel := NewSelection(nil)
	count, err := svc.CommitSelection(context.Background(), sel)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, int32(0), repo.stageCalls)
	assert.Empty(t, notifier.Notices)
}

// TestCommitSelectionStoreUnavailable verifies a store failure is surfaced as
// an aggregate error notice and the selection is kept for resubmission.
func TestCommitSelectionStoreUnavailable(t *testing.T) {
	repo := newFakeStagedRepo()
	repo.failWith = repository.ErrStoreUnavailable
	notifier := NewRecordingNotifier()
	svc := NewStagingService(repo, notifier)

	sel := selectionOf("A", "B")
	_, err := svc.CommitSelection(context.Background(), sel)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.Equal(t, 2, sel.Count(), "selection must survive a failed commit")

	notice, ok := notifier.Last()
	require.True(t, ok)
	assert.True(t, notice.IsError)
}

// TestCommitSelectionDoubleSubmit verifies a second commit while the first is
// outstanding results in exactly one store call.
func TestCommitSelectionDoubleSubmit(t *testing.T) {
	repo := newFakeStagedRepo()
	repo.started = make(chan struct{})
	repo.release = make(chan struct{})
	svc := NewStagingService(repo, NewRecordingNotifier())

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.CommitSelection(context.Background(), selectionOf("A"))
		firstDone <- err
	}()

	<-repo.started

	_, err := svc.CommitSelection(context.Background(), selectionOf("B"))
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(repo.release)
	require.NoError(t, <-firstDone)

	assert.Equal(t, int32(1), repo.stageCalls)
}
