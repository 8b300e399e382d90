package encoding

import (
	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
)

// Fingerprint hashes the canonical JSON form of v. Map keys are emitted in
// sorted order, so two values with equal content hash equally regardless of
// the format they were loaded from.
func Fingerprint(v any) (uint64, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
