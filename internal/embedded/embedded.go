package embedded

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

//go:embed Dockerfile
var Dockerfile []byte

// BuildImage builds the Docker image from the embedded Dockerfile, streaming
// build progress to the caller's stdout/stderr. With noCache set the build
// bypasses the layer cache entirely, for recovering from a corrupted or
// stale image.
func BuildImage(imageName string, noCache bool) error {
	// Write the Dockerfile into a temp directory to use as build context.
	tempDir, err := os.MkdirTemp("", "claude-cage-build-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dockerfilePath := filepath.Join(tempDir, "Dockerfile")
	if err := os.WriteFile(dockerfilePath, Dockerfile, 0644); err != nil {
		return fmt.Errorf("failed to write Dockerfile: %w", err)
	}

	args := []string{"build", "-t", imageName}
	if noCache {
		args = append(args, "--no-cache")
	}
	args = append(args, tempDir)

	cmd := exec.Command("docker", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build Docker image: %w", err)
	}

	return nil
}
