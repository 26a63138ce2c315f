package report

import (
	"path/filepath"
	"strings"
)

// Excluded reports whether path matches any of the ignore globs.
func Excluded(path string, globs []string) bool {
	for _, g := range globs {
		if MatchGlob(path, g) {
			return true
		}
	}
	return false
}

// MatchGlob matches a path against a glob pattern.
// It supports patterns like "*.xml", "drafts/**", "**/archive", etc.
func MatchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		return matchDoubleStar(path, pattern)
	}

	matched, err := filepath.Match(pattern, path)
	if err != nil {
		return false
	}
	if matched {
		return true
	}

	// Also try matching against just the filename.
	matched, err = filepath.Match(pattern, filepath.Base(path))
	if err != nil {
		return false
	}
	return matched
}

// matchDoubleStar handles ** glob patterns.
func matchDoubleStar(path, pattern string) bool {
	parts := strings.Split(pattern, "**")

	if len(parts) == 1 {
		matched, err := filepath.Match(pattern, path)
		if err != nil {
			return false
		}
		return matched
	}

	// Common shapes:
	// "**/foo"   - foo anywhere
	// "foo/**"   - anything under foo
	// "a/**/b"   - prefix and suffix

	if parts[0] == "" && len(parts) == 2 {
		suffix := strings.TrimPrefix(parts[1], "/")
		if suffix == "" {
			// Bare "**" matches everything.
			return true
		}

		if strings.HasSuffix(path, suffix) {
			return true
		}

		for _, component := range strings.Split(path, "/") {
			matched, err := filepath.Match(suffix, component)
			if err == nil && matched {
				return true
			}
		}

		return strings.Contains(path, suffix)
	}

	if parts[1] == "" || parts[1] == "/" {
		prefix := strings.TrimSuffix(parts[0], "/")
		if prefix == "" {
			return true
		}
		return strings.HasPrefix(path, prefix+"/") || path == prefix
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" && !strings.HasPrefix(path, prefix) {
		return false
	}

	if suffix != "" && !strings.HasSuffix(path, suffix) {
		matched, err := filepath.Match(suffix, filepath.Base(path))
		if err != nil || !matched {
			return false
		}
	}

	return true
}
