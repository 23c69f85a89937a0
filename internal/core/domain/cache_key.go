package domain

import (
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// CacheKey identifies a shared engine. Two requests with equal keys observe the
// same engine while any holder keeps it alive.
type CacheKey struct {
	Path           InternedString
	DisableStretch bool
	InstanceID     InternedString
}

// NewCacheKey builds a key from a project or media path, the stretch flag and the instance id.
func NewCacheKey(path string, disableStretch bool, instanceID string) CacheKey {
	return CacheKey{
		Path:           NewInternedString(NormalizePath(path)),
		DisableStretch: disableStretch,
		InstanceID:     NewInternedString(instanceID),
	}
}

// NormalizePath cleans a project path so equivalent spellings share a key.
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// String returns the concatenated form of the key.
func (k CacheKey) String() string {
	return k.Path.String() + strconv.FormatBool(k.DisableStretch) + k.InstanceID.String()
}

// Digest returns a short stable digest of the key for logs and trace attributes.
func (k CacheKey) Digest() string {
	return strconv.FormatUint(xxhash.Sum64String(k.String()), 16)
}
