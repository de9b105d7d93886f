package project

import (
	"github.com/minio/highwayhash"
)

// Fingerprint identifies source content, files with the same fingerprint share one parse
type Fingerprint uint64

// cacheKey seeds the content fingerprint and must be 32 bytes long
var cacheKey = []byte("javaimports.parse.cache.key.v001")

// FingerprintOf returns the fingerprint of source content
func FingerprintOf(src []byte) Fingerprint {
	return Fingerprint(highwayhash.Sum64(src, cacheKey))
}
