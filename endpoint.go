package main

import (
	"errors"
	"fmt"
	"strings"
)

type Direction int

const (
	DirectionUpload Direction = iota
	DirectionDownload
)

func (d Direction) String() string {
	if d == DirectionDownload {
		return "download"
	}
	return "upload"
}

var (
	ErrNoBucket      = errors.New("either src or dst must specify a bucket")
	ErrCrossBucket   = errors.New("cross-bucket transfers are not supported")
	ErrBadOperation  = errors.New("exactly one of copy or move must be requested")
	ErrEmptyRootPath = errors.New("bucket endpoint must carry a path after the colon")
)

// TransferPlan is the resolved form of a src/dst endpoint pair: which bucket
// is involved, which way data flows, and the roots on both sides.
type TransferPlan struct {
	Bucket     string
	SourceRoot string
	DestRoot   string
	Direction  Direction
}

// parseEndpoints infers bucket and direction from a src/dst pair. The side
// carrying a single "name:path" qualifier is the bucket side; exactly one
// side must carry it.
func parseEndpoints(src, dst string) (TransferPlan, error) {
	var plan TransferPlan

	srcBucket, srcPath, srcQualified := splitBucketPath(src)
	dstBucket, dstPath, dstQualified := splitBucketPath(dst)

	switch {
	case srcQualified && dstQualified:
		return plan, fmt.Errorf("%w: %s -> %s", ErrCrossBucket, src, dst)
	case srcQualified:
		if srcPath == "" {
			return plan, fmt.Errorf("%w: %q", ErrEmptyRootPath, src)
		}
		plan.Bucket = srcBucket
		plan.SourceRoot = srcPath
		plan.DestRoot = expandPath(dst)
		plan.Direction = DirectionDownload
	case dstQualified:
		if dstPath == "" {
			return plan, fmt.Errorf("%w: %q", ErrEmptyRootPath, dst)
		}
		plan.Bucket = dstBucket
		plan.SourceRoot = expandPath(src)
		plan.DestRoot = dstPath
		plan.Direction = DirectionUpload
	default:
		return plan, fmt.Errorf("%w: got %q and %q", ErrNoBucket, src, dst)
	}

	return plan, nil
}

func splitBucketPath(endpoint string) (bucket, path string, ok bool) {
	if strings.Count(endpoint, ":") != 1 {
		return "", "", false
	}
	parts := strings.SplitN(endpoint, ":", 2)
	return parts[0], parts[1], true
}
