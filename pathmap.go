package main

import (
	"os"
	"path/filepath"
	"strings"
)

// joinKey joins object key segments with exactly one slash at each boundary.
// Object keys must never go through a filesystem-aware join, so this handles
// the separator bookkeeping itself: a slash already present on either side is
// reused, never doubled, and interior characters are left untouched.
func joinKey(parts ...string) string {
	joined := parts[0]
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		if joined == "" {
			joined = part
			continue
		}
		switch {
		case strings.HasSuffix(joined, "/") && strings.HasPrefix(part, "/"):
			joined += part[1:]
		case strings.HasSuffix(joined, "/") || strings.HasPrefix(part, "/"):
			joined += part
		default:
			joined += "/" + part
		}
	}
	return joined
}

// mapPath translates a source item identifier into its destination identifier
// by stripping srcRoot and re-rooting the remainder under dstRoot. The strip
// is a textual last-occurrence split, not a path-relative computation: if the
// root substring recurs later in the path, the later occurrence wins. That
// matches the historical behavior this tool has always had, so callers relying
// on it keep working.
func mapPath(item, srcRoot, dstRoot string, remote bool) string {
	idx := strings.LastIndex(item, srcRoot)
	if idx == -1 {
		// nothing to strip: the identifier is already outside srcRoot, so
		// re-rooting it again would stack destination prefixes
		return item
	}
	remainder := item[idx+len(srcRoot):]
	remainder = strings.TrimPrefix(remainder, string(os.PathSeparator))
	remainder = strings.TrimPrefix(remainder, "/")

	if remainder == "" {
		return dstRoot
	}
	if remote {
		return joinKey(dstRoot, remainder)
	}
	return filepath.Join(dstRoot, remainder)
}
