package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// bucketNameLength keeps derived names within the 63 character bucket name
// limit imposed by S3-compatible backends.
const bucketNameLength = 62

// DeriveName hashes an arbitrary seed into a deterministic, storage-safe
// bucket name: lowercase hex, fixed length.
func DeriveName(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:bucketNameLength]
}

// BucketName derives the bucket name for one company and one purpose
// ("logo" or "documents"). The seed layout matches the historical
// "<purpose>-<company id>" convention.
func BucketName(purpose string, companyID uuid.UUID) string {
	return DeriveName(fmt.Sprintf("%s-%s", purpose, companyID))
}
