package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinKeyNoDoubledSlash(t *testing.T) {
	assert.Equal(t, "a/b/c/d", joinKey("a/b/", "/c/d"))
}

func TestJoinKeySingleSlashInserted(t *testing.T) {
	assert.Equal(t, "a/b/c/d", joinKey("a/b", "c/d"))
}

func TestJoinKeyOneSidedSlash(t *testing.T) {
	assert.Equal(t, "a/b/c", joinKey("a/b/", "c"))
	assert.Equal(t, "a/b/c", joinKey("a/b", "/c"))
}

func TestJoinKeyInteriorCharactersUntouched(t *testing.T) {
	assert.Equal(t, "a//b/c//d", joinKey("a//b", "c//d"))
}

func TestJoinKeyEmptyParts(t *testing.T) {
	assert.Equal(t, "a/b", joinKey("a/b", ""))
	assert.Equal(t, "c/d", joinKey("", "c/d"))
}

func TestMapPathUpload(t *testing.T) {
	mapped := mapPath("/data/photos/2020/cat.gif", "/data/photos", "archive", true)
	assert.Equal(t, "archive/2020/cat.gif", mapped)
}

func TestMapPathDownload(t *testing.T) {
	mapped := mapPath("data/x/a/b.txt", "data/x", "/tmp/out", false)
	assert.Equal(t, "/tmp/out/a/b.txt", mapped)
}

func TestMapPathEmptyRemainder(t *testing.T) {
	assert.Equal(t, "archive", mapPath("/data/photos", "/data/photos", "archive", true))
}

func TestMapPathRootNotPresent(t *testing.T) {
	// identifiers outside the source root pass through unchanged
	assert.Equal(t, "a/b.txt", mapPath("a/b.txt", "/nope", "dst", true))
}

func TestMapPathLastOccurrenceWins(t *testing.T) {
	// the root substring recurring later in the path is split on its last
	// occurrence, long-standing behavior callers may depend on
	mapped := mapPath("/data/backup/data/cat.gif", "/data", "dst", true)
	assert.Equal(t, "dst/cat.gif", mapped)
}

func TestMapPathIdempotent(t *testing.T) {
	once := mapPath("/data/photos/cat.gif", "/data/photos", "archive", true)
	twice := mapPath(once, "/data/photos", "archive", true)
	assert.Equal(t, once, twice)
}
