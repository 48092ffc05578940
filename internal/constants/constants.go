package constants

import "os"

// Install layout constants
const (
	// InstallDirName is the hidden directory under the user's home that
	// holds all shared state.
	InstallDirName = ".claude-cage"

	// InstallVersion names the versioned subtree under the install root so
	// a future layout change can coexist with old state.
	InstallVersion = "v1"

	// SharedDirName groups the shared configuration and cache directories
	// under the versioned install root.
	SharedDirName = "shared"

	// SharedConfigDirName is the container-side Claude configuration root.
	// It is the exclusive owner of credential and plugin state once seeded.
	SharedConfigDirName = "claude-config"
)

// SharedCache maps a shared host cache directory to its container path.
type SharedCache struct {
	Name          string
	ContainerPath string
}

// SharedCaches lists the per-ecosystem package caches kept under the shared
// tree. Tooling inside the container appends to them; only 'clean --global'
// ever removes them.
var SharedCaches = []SharedCache{
	{Name: "uv-cache", ContainerPath: ContainerHome + "/.cache/uv"},
	{Name: "pip-cache", ContainerPath: ContainerHome + "/.cache/pip"},
	{Name: "npm-cache", ContainerPath: ContainerHome + "/.npm"},
}

// Per-project data layout
const (
	// ProjectDataDirName is the per-project persistent directory created in
	// each project root (and ignored in git).
	ProjectDataDirName = ".claude-cage"

	// VenvsSubdir holds the project's Python virtual environments.
	VenvsSubdir = "venvs"

	// LocalBinSubdir holds locally-installed tools for the project.
	LocalBinSubdir = "local-bin"
)

// Host configuration constants
const (
	// HostConfigEnvVar overrides the host Claude configuration directory.
	HostConfigEnvVar = "CLAUDE_CONFIG_DIR"

	// DefaultHostConfigDirName is the fallback host configuration directory
	// under the user's home.
	DefaultHostConfigDirName = ".claude"

	// SettingsFileName is seeded host->shared on the first launch only.
	SettingsFileName = "settings.json"

	// GitconfigFileName is mounted read-only into the container when present.
	GitconfigFileName = ".gitconfig"
)

// CredentialFileNames are copied host->shared on every launch. Credentials
// may rotate on the host; the shared copy always reflects the latest.
var CredentialFileNames = []string{".credentials.json", "credentials.json"}

// Docker-related constants
const (
	// DefaultImageName is the Docker image built from the embedded Dockerfile.
	DefaultImageName = "claude-cage:latest"

	// ContainerNamePrefix prefixes every instance name so status can find
	// running sessions.
	ContainerNamePrefix = "claude-cage-"
)

// Container-side paths
const (
	// ContainerHome is the home directory inside the container.
	ContainerHome = "/home/dev"

	// ContainerWorkspace is where the project directory is mounted.
	ContainerWorkspace = "/workspace"

	// ContainerClaudeConfig is the container-side Claude configuration root.
	ContainerClaudeConfig = ContainerHome + "/.claude"

	// ContainerVenvs is where the project's virtualenvs are mounted.
	ContainerVenvs = ContainerHome + "/.venvs"

	// ContainerLocalBin is where the project's local tools are mounted.
	ContainerLocalBin = ContainerHome + "/.local/bin"

	// ContainerGitconfig is the container-side git identity file.
	ContainerGitconfig = ContainerHome + "/" + GitconfigFileName
)

// File permissions
const (
	// DirPermissions is the default permission mode for directories.
	DirPermissions os.FileMode = 0755

	// FilePermissions is the default permission mode for sensitive files.
	FilePermissions os.FileMode = 0600
)
