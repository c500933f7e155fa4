// Package xfs holds small filesystem helpers for configured paths.
package xfs

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde resolves a leading "~" or "~/" in a path to the current user's
// home directory. Other forms ("~user/...", mid-path tildes) are returned
// unchanged, as is the input when the home directory cannot be determined.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}
