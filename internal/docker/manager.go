package docker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

// Default timeout for short Docker commands. The foreground run and image
// builds are unbounded.
const defaultCommandTimeout = 30 * time.Second

// Manager implements ContainerManager using the Docker CLI.
type Manager struct{}

var _ ContainerManager = (*Manager)(nil)

// NewManager creates a new Docker manager.
func NewManager() *Manager {
	return &Manager{}
}

// CheckInstalled verifies the docker binary is on PATH. This is an
// operator-fixable environment error, reported without retry.
func (m *Manager) CheckInstalled() error {
	if _, err := exec.LookPath("docker"); err != nil {
		return fmt.Errorf("docker is not installed or not on PATH. Install Docker and try again: %w", err)
	}
	return nil
}

// CheckDaemon verifies the Docker daemon is reachable.
func (m *Manager) CheckDaemon() error {
	if err := m.runCommandWithTimeout(defaultCommandTimeout, "docker", "info"); err != nil {
		return fmt.Errorf("Docker is not running. Start the Docker daemon and try again: %w", err)
	}
	return nil
}

// ImageExists checks if a Docker image exists locally.
func (m *Manager) ImageExists(imageName string) bool {
	return m.runCommandWithTimeout(defaultCommandTimeout, "docker", "image", "inspect", imageName) == nil
}

// Remove force-removes a container by name. Removing a container that does
// not exist is not an error.
func (m *Manager) Remove(containerName string) error {
	err := m.runCommandWithTimeout(defaultCommandTimeout, "docker", "rm", "-f", containerName)
	if err != nil && !m.containerExists(containerName) {
		return nil
	}
	return err
}

// List returns the names of running containers with the given name prefix.
func (m *Manager) List(prefix string) ([]string, error) {
	output, err := m.getCommandOutputWithTimeout(defaultCommandTimeout,
		"docker", "ps", "--filter", "name=^"+prefix, "--format", "{{.Names}}")
	if err != nil {
		return nil, fmt.Errorf("failed to list containers: %w", err)
	}

	var names []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// Run starts the container in the foreground with stdio attached and blocks
// until the contained process exits. SIGINT, SIGTERM and SIGHUP received
// while waiting are forwarded to the docker client, which owns the attached
// TTY. The container's exit code is returned, not treated as an error.
func (m *Manager) Run(config RunConfig) (int, error) {
	if err := config.Validate(); err != nil {
		return 0, fmt.Errorf("invalid run config: %w", err)
	}

	args := []string{"run", "--rm", "-it", "--name", config.ContainerName}
	if config.User != "" {
		args = append(args, "--user", config.User)
	}
	for _, env := range config.Env {
		args = append(args, "-e", env)
	}
	for _, mount := range config.Mounts {
		args = append(args, "-v", mount.spec())
	}
	if config.WorkDir != "" {
		args = append(args, "-w", config.WorkDir)
	}
	args = append(args, config.ImageName)
	args = append(args, config.Command...)

	cmd := exec.Command("docker", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start container: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigChan:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	signal.Stop(sigChan)
	close(done)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("container run failed: %w", err)
	}
	return 0, nil
}

// containerExists checks if a container exists (running or stopped).
func (m *Manager) containerExists(containerName string) bool {
	output, err := m.getCommandOutputWithTimeout(defaultCommandTimeout,
		"docker", "ps", "-a", "-q", "-f", "name=^"+containerName+"$")
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(string(output))) > 0
}

// runCommandWithTimeout runs a command with a timeout, discarding output.
func (m *Manager) runCommandWithTimeout(timeout time.Duration, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("command timed out after %v", timeout)
	}
	return err
}

// getCommandOutputWithTimeout runs a command and returns its output with a timeout.
func (m *Manager) getCommandOutputWithTimeout(timeout time.Duration, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()

	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("command timed out after %v", timeout)
	}
	return output, err
}
