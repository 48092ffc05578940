package docker

import "fmt"

// Mount is a single host->container bind mount.
type Mount struct {
	Source   string
	Target   string
	ReadOnly bool
}

// spec returns the -v argument form of the mount.
func (m Mount) spec() string {
	s := m.Source + ":" + m.Target
	if m.ReadOnly {
		s += ":ro"
	}
	return s
}

// RunConfig holds everything needed to start an interactive container.
type RunConfig struct {
	ImageName     string
	ContainerName string
	// User is the uid:gid the contained process runs as, so files created
	// in mounted directories are owned by the invoking host user.
	User string
	// Env holds KEY=VALUE pairs passed to the container.
	Env []string
	// WorkDir is the container-side working directory.
	WorkDir string
	Mounts  []Mount
	// Command is the entry point command and its arguments.
	Command []string
}

// Validate checks that the configuration is complete enough to run.
func (c RunConfig) Validate() error {
	if c.ImageName == "" {
		return fmt.Errorf("image name is required")
	}
	if c.ContainerName == "" {
		return fmt.Errorf("container name is required")
	}
	if len(c.Command) == 0 {
		return fmt.Errorf("command is required")
	}
	for _, m := range c.Mounts {
		if m.Source == "" || m.Target == "" {
			return fmt.Errorf("mount source and target are required (got %q -> %q)", m.Source, m.Target)
		}
	}
	return nil
}

// ContainerManager handles engine preflight and container operations.
type ContainerManager interface {
	// CheckInstalled verifies the engine binary is available.
	CheckInstalled() error

	// CheckDaemon verifies the engine daemon is reachable.
	CheckDaemon() error

	// ImageExists checks if an image exists locally.
	ImageExists(imageName string) bool

	// Run starts the container in the foreground with stdio attached and
	// blocks until it exits. Returns the container's exit code.
	Run(config RunConfig) (int, error)

	// Remove force-removes a container by name, running or not.
	Remove(containerName string) error

	// List returns the names of running containers whose names start with
	// the given prefix.
	List(prefix string) ([]string, error)
}
