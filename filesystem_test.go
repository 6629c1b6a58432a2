package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalkDirectoryFindsEveryFileOnce(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "one", "two")
	assert.Nil(t, os.MkdirAll(nested, os.ModePerm))

	expected := []string{
		filepath.Join(tempDir, "top.txt"),
		filepath.Join(tempDir, "one", "mid.txt"),
		filepath.Join(nested, "deep.txt"),
	}
	for _, path := range expected {
		assert.Nil(t, os.WriteFile(path, []byte("x"), 0644))
	}

	found, walkErr := walkDirectory(tempDir)

	assert.Nil(t, walkErr)
	assert.ElementsMatch(t, expected, found)
	for _, path := range found {
		assert.True(t, strings.HasPrefix(path, tempDir))
	}
}

func TestWalkDirectoryOmitsDirectories(t *testing.T) {
	tempDir := t.TempDir()
	assert.Nil(t, os.MkdirAll(filepath.Join(tempDir, "emptydir"), os.ModePerm))

	found, walkErr := walkDirectory(tempDir)

	assert.Nil(t, walkErr)
	assert.Empty(t, found)
}

func TestWalkDirectoryMissingRoot(t *testing.T) {
	_, walkErr := walkDirectory(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.NotNil(t, walkErr)
	assert.True(t, os.IsNotExist(walkErr))
}

func TestExpandPathEnvVars(t *testing.T) {
	t.Setenv("S3FERRY_TEST_DIR", "/data")
	assert.Equal(t, "/data/photos", expandPath("$S3FERRY_TEST_DIR/photos"))
}

func TestExpandPathHome(t *testing.T) {
	home, homeErr := os.UserHomeDir()
	assert.Nil(t, homeErr)
	assert.Equal(t, home+"/photos", expandPath("~/photos"))
}

func TestLocalFileExists(t *testing.T) {
	tempDir := t.TempDir()
	realFile := filepath.Join(tempDir, "real")
	assert.Nil(t, os.WriteFile(realFile, []byte("x"), 0644))

	assert.True(t, localFileExists(realFile))
	assert.False(t, localFileExists(filepath.Join(tempDir, "fake")))
}
