package service

import (
	"sort"
	"strings"

	"bulk-product-editor/models"
)

// SelectionChangedFunc is called with the selected identifiers whenever the
// selection set changes
type SelectionChangedFunc func(selectedIDs []string)

// Selection tracks which products of the currently displayed collection are
// checked. It owns the search term: re-filtering replaces the displayed
// collection and clears the selection, so every selected identifier is always
// present in the displayed collection.
//
// A Selection is scoped to one displayed-collection context (list view or
// staging modal) and is not safe for concurrent use.
type Selection struct {
	source    []models.Product
	displayed []models.Product
	term      string
	selected  map[string]struct{}
	onChange  SelectionChangedFunc
}

// NewSelection creates a Selection over the given source collection.
// Initially the whole source is displayed and nothing is selected.
func NewSelection(source []models.Product) *Selection {
	return &Selection{
		source:    source,
		displayed: source,
		selected:  make(map[string]struct{}),
	}
}

// SetOnChange registers a handler invoked after every selection change
func (s *Selection) SetOnChange(fn SelectionChangedFunc) {
	s.onChange = fn
}

// Displayed returns the currently displayed collection
func (s *Selection) Displayed() []models.Product {
	return s.displayed
}

// SearchTerm returns the current search term
func (s *Selection) SearchTerm() string {
	return s.term
}

// SetSearchTerm recomputes the displayed collection from the source and
// invalidates the selection. Filtering is always a full recomputation of the
// projection, never an incremental patch of the previous one.
func (s *Selection) SetSearchTerm(term string) {
	s.term = term
	s.OnDisplayedSetChanged(FilterByTitle(term, s.source))
}

// OnDisplayedSetChanged replaces the displayed collection and unconditionally
// clears the selection. Skipping this step when the displayed collection
// changes would leave the selection pointing at filtered-out products.
func (s *Selection) OnDisplayedSetChanged(displayed []models.Product) {
	s.displayed = displayed
	s.selected = make(map[string]struct{})
	s.notifyChange()
}

// Toggle flips membership of the given identifier in the selection.
// Identifiers outside the displayed collection are ignored.
func (s *Selection) Toggle(productID string) {
	if !s.isDisplayed(productID) {
		return
	}
	if _, ok := s.selected[productID]; ok {
		delete(s.selected, productID)
	} else {
		s.selected[productID] = struct{}{}
	}
	s.notifyChange()
}

// SelectAll selects every product in the displayed collection
func (s *Selection) SelectAll() {
	s.selected = make(map[string]struct{}, len(s.displayed))
	for _, p := range s.displayed {
		s.selected[p.ID] = struct{}{}
	}
	s.notifyChange()
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.selected = make(map[string]struct{})
	s.notifyChange()
}

// IsSelected reports whether the given identifier is selected
func (s *Selection) IsSelected(productID string) bool {
	_, ok := s.selected[productID]
	return ok
}

// IsAllSelected reports whether every displayed product is selected.
// Derived from the selection and the displayed collection; false when the
// displayed collection is empty.
func (s *Selection) IsAllSelected() bool {
	return len(s.displayed) > 0 && len(s.selected) == len(s.displayed)
}

// Count returns the number of selected products
func (s *Selection) Count() int {
	return len(s.selected)
}

// SelectedIDs returns the selected identifiers as a sorted copy
func (s *Selection) SelectedIDs() []string {
	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Selection) isDisplayed(productID string) bool {
	for _, p := range s.displayed {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *Selection) notifyChange() {
	if s.onChange != nil {
		s.onChange(s.SelectedIDs())
	}
}

// FilterByTitle returns the products whose title contains the term,
// case-insensitively. An empty term returns the source unchanged. The filter is
// a pure projection over the source and is recomputed on every call.
func FilterByTitle(term string, source []models.Product) []models.Product {
	if term == "" {
		return source
	}
	needle := strings.ToLower(term)
	filtered := make([]models.Product, 0, len(source))
	for _, p := range source {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
