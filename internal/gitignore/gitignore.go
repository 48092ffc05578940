// Package gitignore keeps the per-project data directory out of version
// control by appending an ignore pattern to the project's .gitignore on
// first launch.
package gitignore

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jeanhaley32/claude-cage/internal/constants"
)

// EnsureEntry appends an ignore pattern for the project data directory to
// the project's .gitignore, creating the file if absent. It is a no-op when
// the project is not a git work tree or when an existing rule (in any
// ignore source git consults) already covers the directory.
func EnsureEntry(projectDir string) error {
	if !isWorkTree(projectDir) {
		return nil
	}
	if isIgnored(projectDir, constants.ProjectDataDirName) {
		return nil
	}
	path := filepath.Join(projectDir, ".gitignore")
	return appendEntry(path, constants.ProjectDataDirName+"/")
}

// isWorkTree reports whether dir is inside a git work tree.
func isWorkTree(dir string) bool {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--is-inside-work-tree")
	output, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(output)) == "true"
}

// isIgnored reports whether git already ignores name inside dir.
func isIgnored(dir, name string) bool {
	cmd := exec.Command("git", "-C", dir, "check-ignore", "-q", name)
	return cmd.Run() == nil
}

// appendEntry appends pattern as its own line to the ignore file at path,
// creating the file if needed. An existing file that does not end with a
// newline gets one before the pattern.
func appendEntry(path, pattern string) error {
	entry := pattern + "\n"
	if data, err := os.ReadFile(path); err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
		entry = "\n" + entry
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return f.Close()
}
