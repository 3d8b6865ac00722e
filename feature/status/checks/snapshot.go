package checks

import (
	"context"
	"fmt"

	"catalog-engine/core/storage"

	"github.com/minio/minio-go/v7"
)

// CheckSnapshot reports whether the manifest snapshot object exists in
// the bucket. A missing snapshot means a total upstream outage would
// leave only synthetic items.
func CheckSnapshot(ctx context.Context, client storage.Client, bucket, object string) (bool, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("bucket %s does not exist", bucket)
	}

	opts := minio.ListObjectsOptions{
		Prefix:    object,
		Recursive: false,
		MaxKeys:   1,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err == nil && obj.Key == object {
			return true, nil
		}
		break
	}

	return false, nil
}
