package models

// MetafieldNamespace is the namespace owned by this app. It disambiguates our
// attributes from platform-owned or other-app metafields on the same product.
const MetafieldNamespace = "custom"

// Metafield keys written by the bulk editor
const (
	KeyAddToCartText            = "button_add_to_cart_text"
	KeyCustomNote               = "custom_note"
	KeyStockNotificationEnabled = "is_stock_notification_enabled"
)

// Metafield value types accepted by the platform batch write
const (
	TypeSingleLineText = "single_line_text_field"
	TypeMultiLineText  = "multi_line_text_field"
	TypeBoolean        = "boolean"
)

// Metafield represents a (namespace, key, value) attribute attached to one product
type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
}

// MetafieldInput represents one entry of a batched metafield upsert.
// Value is always a string; boolean flags are stringified ("true"/"false").
type MetafieldInput struct {
	OwnerID   string `json:"ownerId"`
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}

// UserError represents a per-entry rejection reported by the platform batch
// write. The platform does not tell us which entry the error belongs to.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
}

// BatchOutcome is the reconciled result of one bulk attribute propagation.
// UpdatedCount is len(ids) when the batch reported zero item errors, and 0 when
// any item error was reported (the platform does not attribute errors to
// entries, so no partial count can be claimed).
type BatchOutcome struct {
	UpdatedCount int `json:"updatedCount"`
}
