package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeanhaley32/claude-cage/internal/constants"
)

// Resolver resolves the fixed filesystem layout: the versioned install root
// with its shared tree, and the host Claude configuration directory.
type Resolver struct {
	homeDir string
}

// NewResolver creates a new Resolver rooted at the invoking user's home.
func NewResolver() (*Resolver, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Resolver{homeDir: homeDir}, nil
}

// NewResolverAt creates a Resolver rooted at an explicit home directory.
// Used by tests to keep all paths inside a temp tree.
func NewResolverAt(homeDir string) *Resolver {
	return &Resolver{homeDir: homeDir}
}

// HomeDir returns the user's home directory.
func (r *Resolver) HomeDir() string {
	return r.homeDir
}

// InstallRoot returns the versioned install root.
// Returns: ~/.claude-cage/v1
func (r *Resolver) InstallRoot() string {
	return filepath.Join(r.homeDir, constants.InstallDirName, constants.InstallVersion)
}

// SharedRoot returns the root of the shared configuration/cache tree.
// Returns: ~/.claude-cage/v1/shared
func (r *Resolver) SharedRoot() string {
	return filepath.Join(r.InstallRoot(), constants.SharedDirName)
}

// SharedConfigDir returns the shared container-side Claude configuration
// directory. Returns: ~/.claude-cage/v1/shared/claude-config
func (r *Resolver) SharedConfigDir() string {
	return filepath.Join(r.SharedRoot(), constants.SharedConfigDirName)
}

// SharedCacheDir returns the shared cache directory with the given name.
func (r *Resolver) SharedCacheDir(name string) string {
	return filepath.Join(r.SharedRoot(), name)
}

// SharedDirs returns every directory of the shared skeleton, config first.
func (r *Resolver) SharedDirs() []string {
	dirs := []string{r.SharedConfigDir()}
	for _, cache := range constants.SharedCaches {
		dirs = append(dirs, r.SharedCacheDir(cache.Name))
	}
	return dirs
}

// HostConfigRoot returns the host Claude configuration directory. The
// CLAUDE_CONFIG_DIR environment variable takes priority; otherwise it is
// ~/.claude. The returned directory is read-only input and may not exist.
func (r *Resolver) HostConfigRoot() string {
	if override := os.Getenv(constants.HostConfigEnvVar); override != "" {
		return override
	}
	return filepath.Join(r.homeDir, constants.DefaultHostConfigDirName)
}

// GitconfigPath returns the host git identity file, present or not.
func (r *Resolver) GitconfigPath() string {
	return filepath.Join(r.homeDir, constants.GitconfigFileName)
}

// EnsureShared creates the shared directory skeleton. Idempotent.
func (r *Resolver) EnsureShared() error {
	for _, dir := range r.SharedDirs() {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// ProjectDataDir returns the per-project persistent directory for the given
// project root. Keyed by path: distinct project paths get distinct data dirs.
func ProjectDataDir(projectDir string) string {
	return filepath.Join(projectDir, constants.ProjectDataDirName)
}

// VenvsDir returns the project's virtualenv directory.
func VenvsDir(projectDir string) string {
	return filepath.Join(ProjectDataDir(projectDir), constants.VenvsSubdir)
}

// LocalBinDir returns the project's local tools directory.
func LocalBinDir(projectDir string) string {
	return filepath.Join(ProjectDataDir(projectDir), constants.LocalBinSubdir)
}

// EnsureProject creates the per-project data skeleton. Idempotent.
func EnsureProject(projectDir string) error {
	for _, dir := range []string{VenvsDir(projectDir), LocalBinDir(projectDir)} {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
