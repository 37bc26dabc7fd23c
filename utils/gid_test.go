package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestProductDisplayID verifies trailing-segment extraction from platform GIDs.
func TestProductDisplayID(t *testing.T) {
	tests := []struct {
		name     string
		gid      string
		expected string
	}{
		{name: "product gid", gid: "gid://shopify/Product/8214223221", expected: "8214223221"},
		{name: "plain id passes through", gid: "8214223221", expected: "8214223221"},
		{name: "empty", gid: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProductDisplayID(tt.gid))
		})
	}
}
