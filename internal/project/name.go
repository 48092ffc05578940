package project

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jeanhaley32/claude-cage/internal/constants"
)

// Pre-compiled regex for sanitization (compiled once at package init)
var unsafeCharRegex = regexp.MustCompile(`[^a-z0-9._-]`)

// Maximum length for derived instance names
const maxSlugLength = 100

// Slug converts a project directory name into a container-safe identifier:
// lower-cased, with every character outside [a-z0-9._-] replaced by '-'.
//
// The slug is derived from the base name only, so two project paths whose
// base names normalize identically share an instance name. See the package
// doc for the consequences.
func Slug(name string) string {
	name = strings.ToLower(name)
	name = unsafeCharRegex.ReplaceAllString(name, "-")

	// Limit length to stay within Docker's container name rules.
	if len(name) > maxSlugLength {
		name = name[:maxSlugLength]
	}

	if name == "" {
		name = "project"
	}
	return name
}

// ContainerName returns the deterministic instance name for a project
// directory: the shared prefix plus the slug of its base name.
func ContainerName(projectDir string) string {
	return constants.ContainerNamePrefix + Slug(filepath.Base(projectDir))
}
