package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jeanhaley32/claude-cage/internal/constants"
	"github.com/jeanhaley32/claude-cage/internal/credsync"
	"github.com/jeanhaley32/claude-cage/internal/docker"
	"github.com/jeanhaley32/claude-cage/internal/embedded"
	"github.com/jeanhaley32/claude-cage/internal/gitignore"
	"github.com/jeanhaley32/claude-cage/internal/paths"
	"github.com/jeanhaley32/claude-cage/internal/platform"
	"github.com/jeanhaley32/claude-cage/internal/project"
)

// runLaunch is the default command: prepare host state and run Claude Code
// (or a shell) in the foreground inside the container. The container's exit
// status becomes the process exit status.
func runLaunch(cmd *cobra.Command, args []string) error {
	yolo, err := cmd.Flags().GetBool("yolo")
	if err != nil {
		return fmt.Errorf("invalid yolo flag: %w", err)
	}
	shell, err := cmd.Flags().GetBool("shell")
	if err != nil {
		return fmt.Errorf("invalid shell flag: %w", err)
	}

	if !platform.IsSupported() {
		return fmt.Errorf("unsupported platform %q: claude-cage requires Linux or macOS", platform.Detect())
	}

	resolver, err := paths.NewResolver()
	if err != nil {
		return err
	}

	var manager docker.ContainerManager = docker.NewManager()
	if err := manager.CheckInstalled(); err != nil {
		return err
	}
	if err := manager.CheckDaemon(); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	projectDir, err := filepath.Abs(cwd)
	if err != nil {
		return fmt.Errorf("failed to resolve project directory: %w", err)
	}
	containerName := project.ContainerName(projectDir)

	if !manager.ImageExists(constants.DefaultImageName) {
		log.Info("Image not found, building it now", "image", constants.DefaultImageName)
		if err := embedded.BuildImage(constants.DefaultImageName, false); err != nil {
			return fmt.Errorf("failed to build image: %w", err)
		}
		log.Info("Image built", "image", constants.DefaultImageName)
	}

	if err := resolver.EnsureShared(); err != nil {
		return err
	}
	if err := paths.EnsureProject(projectDir); err != nil {
		return err
	}

	if err := credsync.Sync(resolver.HostConfigRoot(), resolver.SharedConfigDir()); err != nil {
		return err
	}

	if err := gitignore.EnsureEntry(projectDir); err != nil {
		log.Warn("Could not update .gitignore", "err", err)
	}

	// A previous session may still hold our name; reclaim it.
	if err := manager.Remove(containerName); err != nil {
		log.Warn("Could not remove stale container", "name", containerName, "err", err)
	}

	config := docker.RunConfig{
		ImageName:     constants.DefaultImageName,
		ContainerName: containerName,
		User:          fmt.Sprintf("%d:%d", os.Getuid(), os.Getgid()),
		Env:           []string{"HOME=" + constants.ContainerHome},
		WorkDir:       constants.ContainerWorkspace,
		Mounts:        assembleMounts(resolver, projectDir),
		Command:       entrypointCommand(yolo, shell),
	}

	log.Info("Starting container", "name", containerName)
	code, err := manager.Run(config)
	if err != nil {
		return err
	}
	exitCode = code
	return nil
}

// assembleMounts builds the bind-mount set: the project tree and its
// persistent data (per-project), plus the shared configuration and caches.
func assembleMounts(resolver *paths.Resolver, projectDir string) []docker.Mount {
	mounts := []docker.Mount{
		{Source: projectDir, Target: constants.ContainerWorkspace},
		{Source: paths.VenvsDir(projectDir), Target: constants.ContainerVenvs},
		{Source: paths.LocalBinDir(projectDir), Target: constants.ContainerLocalBin},
		{Source: resolver.SharedConfigDir(), Target: constants.ContainerClaudeConfig},
	}
	for _, cache := range constants.SharedCaches {
		mounts = append(mounts, docker.Mount{
			Source: resolver.SharedCacheDir(cache.Name),
			Target: cache.ContainerPath,
		})
	}

	// Git identity is optional and never written from inside the container.
	if _, err := os.Stat(resolver.GitconfigPath()); err == nil {
		mounts = append(mounts, docker.Mount{
			Source:   resolver.GitconfigPath(),
			Target:   constants.ContainerGitconfig,
			ReadOnly: true,
		})
	}

	return mounts
}

// entrypointCommand picks the container entry point for the launch variant.
func entrypointCommand(yolo, shell bool) []string {
	switch {
	case shell:
		return []string{"/bin/bash"}
	case yolo:
		return []string{"claude", "--dangerously-skip-permissions"}
	default:
		return []string{"claude"}
	}
}
