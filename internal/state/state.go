// Package state gathers the read-only facts the status command reports:
// running instances, shared-directory disk usage, and per-project data
// directories scattered under the user's home.
package state

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jeanhaley32/claude-cage/internal/constants"
)

// DirUsage pairs a directory with its cumulative size in bytes.
type DirUsage struct {
	Path string
	Size int64
}

// DirSize walks path and returns the total size of all regular files under
// it. Unreadable entries are skipped rather than failing the whole report.
func DirSize(path string) int64 {
	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total
}

// FindProjectDataDirs scans root for per-project data directories, at most
// maxDepth levels below root. The install root itself shares the data
// directory name and is excluded via skip. Matched directories are not
// descended into, and scan errors are skipped: status is best-effort.
func FindProjectDataDirs(root string, maxDepth int, skip string) []DirUsage {
	var found []DirUsage

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fs.SkipDir
		}
		depth := 0
		if rel != "." {
			depth = strings.Count(rel, string(filepath.Separator)) + 1
		}
		if depth > maxDepth {
			return fs.SkipDir
		}

		if d.Name() == constants.ProjectDataDirName && path != root {
			if skip == "" || !isWithin(skip, path) {
				found = append(found, DirUsage{Path: path, Size: DirSize(path)})
			}
			return fs.SkipDir
		}
		return nil
	})

	return found
}

// isWithin reports whether path equals base or lives under it.
func isWithin(base, path string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}

// SharedUsage returns the usage of each shared directory, in the given order.
// Directories that do not exist yet are reported with zero size.
func SharedUsage(dirs []string) []DirUsage {
	usage := make([]DirUsage, 0, len(dirs))
	for _, dir := range dirs {
		var size int64
		if _, err := os.Stat(dir); err == nil {
			size = DirSize(dir)
		}
		usage = append(usage, DirUsage{Path: dir, Size: size})
	}
	return usage
}
