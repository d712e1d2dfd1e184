package texinspect

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a hex-encoded xxhash64 of a located sub-image's raw
// bytes, for cache-key or dedup use.
func Fingerprint(data []byte, sub SubImage) string {
	h := xxhash.New()
	h.Write(data[sub.Offset : sub.Offset+sub.Size])
	return fmt.Sprintf("%016x", h.Sum64())
}
