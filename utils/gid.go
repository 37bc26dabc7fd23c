package utils

import "strings"

// ProductDisplayID extracts the short display identifier from a platform GID.
// "gid://shopify/Product/123" yields "123". Input that is not a GID is
// returned unchanged.
func ProductDisplayID(gid string) string {
	if gid == "" {
		return ""
	}
	parts := strings.Split(gid, "/")
	return parts[len(parts)-1]
}
