package main

import (
	"os"
	"path/filepath"
	"strings"
)

type walkFunc func(string) ([]string, error)

var (
	// TODO: is there some better way to allow for stubbing filesystem interactions for tests?
	concreteWalkFunc walkFunc = walkDirectory
)

// walkDirectory recursively lists every file under dirPath, keeping full
// paths. Directory entries themselves are omitted. A missing root surfaces
// the underlying stat error from the walk.
func walkDirectory(dirPath string) ([]string, error) {
	allFiles := make([]string, 0)
	walkErr := filepath.Walk(dirPath, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !f.IsDir() {
			allFiles = append(allFiles, path)
		}
		return nil
	})

	return allFiles, walkErr
}

// expandPath resolves a leading ~ and any environment variables in a local
// path, mirroring shell expansion for roots given on the command line.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + strings.TrimPrefix(path, "~")
		}
	}
	return os.ExpandEnv(path)
}

func localFileExists(path string) bool {
	_, statErr := os.Stat(path)
	return statErr == nil
}
