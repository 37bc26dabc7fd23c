package models

// StageProductsRequest represents the request body for staging selected products
type StageProductsRequest struct {
	SelectedProductIDs []string `json:"selectedProductIds"`
}

// StageProductsResponse represents the response after staging products
type StageProductsResponse struct {
	StagedCount int    `json:"stagedCount"`
	Notice      string `json:"notice"`
}

// ProductsPageResponse represents the page-load payload: the full catalog page
// and the staged subset, fetched independently
type ProductsPageResponse struct {
	Products       []Product `json:"products"`
	StagedProducts []Product `json:"stagedProducts"`
}

// BulkAttributeResponse represents the response of a bulk attribute write
type BulkAttributeResponse struct {
	UpdatedCount int    `json:"updatedCount"`
	Notice       string `json:"notice"`
}
