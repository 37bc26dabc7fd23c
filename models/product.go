package models

// ProductImage represents the representative image of a product
type ProductImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

// Product represents a read-only catalog product snapshot fetched from the platform.
// The ID is the opaque platform identifier (e.g. "gid://shopify/Product/123").
type Product struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	TotalInventory int            `json:"totalInventory"`
	Images         []ProductImage `json:"images"`
	Metafields     []Metafield    `json:"metafields"`
}

// FirstImage returns the first image of the product, or an empty image if the
// product has no media attached. Never index Images directly; the platform may
// return products without any image.
func (p *Product) FirstImage() ProductImage {
	if len(p.Images) == 0 {
		return ProductImage{}
	}
	return p.Images[0]
}

// MetafieldValue returns the value of the metafield with the given namespace and
// key, and whether it was present. Missing metafields are normal (never written yet).
func (p *Product) MetafieldValue(namespace, key string) (string, bool) {
	for _, mf := range p.Metafields {
		if mf.Namespace == namespace && mf.Key == key {
			return mf.Value, true
		}
	}
	return "", false
}

// IsStockNotificationEnabled reports whether the stock notification flag
// metafield is set to the stringified boolean "true"
func (p *Product) IsStockNotificationEnabled() bool {
	value, ok := p.MetafieldValue(MetafieldNamespace, KeyStockNotificationEnabled)
	return ok && value == "true"
}
