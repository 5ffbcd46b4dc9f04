package payments

import (
	"strings"

	"github.com/spf13/cast"
)

// Keys that look like credentials are dropped before metadata is stored or
// forwarded to the provider.
var blockedMetadataKeys = []string{"password", "secret", "token", "key", "apikey"}

// SanitizeMetadata is the single point where external metadata enters the
// system: it strips sensitive-looking keys and coerces every remaining value
// to a string. Returns nil when nothing survives.
func SanitizeMetadata(metadata map[string]any) map[string]string {
	if len(metadata) == 0 {
		return nil
	}
	sanitized := make(map[string]string, len(metadata))
	for k, v := range metadata {
		lower := strings.ToLower(k)
		blocked := false
		for _, b := range blockedMetadataKeys {
			if strings.Contains(lower, b) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		sanitized[k] = cast.ToString(v)
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}
