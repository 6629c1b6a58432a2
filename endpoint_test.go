package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDownloadDirection(t *testing.T) {
	plan, parseErr := parseEndpoints("mybucket:data/x", "~/out")

	assert.Nil(t, parseErr)
	assert.Equal(t, DirectionDownload, plan.Direction)
	assert.Equal(t, "mybucket", plan.Bucket)
	assert.Equal(t, "data/x", plan.SourceRoot)
	assert.False(t, strings.HasPrefix(plan.DestRoot, "~"))
	assert.True(t, strings.HasSuffix(plan.DestRoot, "/out"))
}

func TestParseUploadDirection(t *testing.T) {
	plan, parseErr := parseEndpoints("/data/x", "mybucket:out")

	assert.Nil(t, parseErr)
	assert.Equal(t, DirectionUpload, plan.Direction)
	assert.Equal(t, "mybucket", plan.Bucket)
	assert.Equal(t, "/data/x", plan.SourceRoot)
	assert.Equal(t, "out", plan.DestRoot)
}

func TestParseBothQualifiedFails(t *testing.T) {
	_, parseErr := parseEndpoints("a:x", "b:y")

	assert.NotNil(t, parseErr)
	assert.ErrorIs(t, parseErr, ErrCrossBucket)
}

func TestParseNeitherQualifiedFails(t *testing.T) {
	_, parseErr := parseEndpoints("x", "y")

	assert.NotNil(t, parseErr)
	assert.ErrorIs(t, parseErr, ErrNoBucket)
}

func TestParseEmptyBucketPathFails(t *testing.T) {
	_, parseErr := parseEndpoints("/data/x", "mybucket:")
	assert.ErrorIs(t, parseErr, ErrEmptyRootPath)

	_, parseErr = parseEndpoints("mybucket:", "/tmp/out")
	assert.ErrorIs(t, parseErr, ErrEmptyRootPath)
}

func TestParseMultipleSeparatorsNotQualified(t *testing.T) {
	// more than one colon is not a bucket qualifier
	_, parseErr := parseEndpoints("we:ird:name", "also:odd:here")

	assert.ErrorIs(t, parseErr, ErrNoBucket)
}
