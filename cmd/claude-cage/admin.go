package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jeanhaley32/claude-cage/internal/constants"
	"github.com/jeanhaley32/claude-cage/internal/docker"
	"github.com/jeanhaley32/claude-cage/internal/embedded"
	"github.com/jeanhaley32/claude-cage/internal/paths"
	"github.com/jeanhaley32/claude-cage/internal/state"
	"github.com/jeanhaley32/claude-cage/internal/terminal"
)

// projectScanDepth bounds the home-tree search for project data directories.
const projectScanDepth = 6

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show running instances and disk usage",
		RunE:  runStatus,
	}
}

// runStatus is a read-only report. Individual probe failures degrade to
// warnings; the command itself always succeeds.
func runStatus(cmd *cobra.Command, args []string) error {
	resolver, err := paths.NewResolver()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("claude-cage status"))
	fmt.Println()

	fmt.Println(sectionStyle.Render("Instances"))
	var manager docker.ContainerManager = docker.NewManager()
	names, err := manager.List(constants.ContainerNamePrefix)
	if err != nil {
		log.Warn("Could not list containers", "err", err)
	}
	if len(names) == 0 {
		fmt.Println(mutedStyle.Render("  (none running)"))
	}
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()

	fmt.Println(sectionStyle.Render("Shared data"))
	for _, usage := range state.SharedUsage(resolver.SharedDirs()) {
		fmt.Printf("  %-14s %s\n", filepath.Base(usage.Path), humanize.IBytes(uint64(usage.Size)))
	}
	fmt.Println()

	fmt.Println(sectionStyle.Render("Project data"))
	projects := state.FindProjectDataDirs(resolver.HomeDir(), projectScanDepth,
		filepath.Join(resolver.HomeDir(), constants.InstallDirName))
	if len(projects) == 0 {
		fmt.Println(mutedStyle.Render("  (none found)"))
	}
	for _, usage := range projects {
		fmt.Printf("  %-10s %s\n", humanize.IBytes(uint64(usage.Size)), filepath.Dir(usage.Path))
	}

	return nil
}

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete persistent data after confirmation",
		Long: `Deletes the current project's data directory (virtualenvs and locally
installed tools). With --global, deletes the shared configuration and
package caches instead and recreates the empty skeleton.

Nothing is deleted without an explicit 'y' confirmation.`,
		RunE: runClean,
	}

	cmd.Flags().Bool("global", false, "Clean the shared configuration and caches instead of project data")

	return cmd
}

func runClean(cmd *cobra.Command, args []string) error {
	global, err := cmd.Flags().GetBool("global")
	if err != nil {
		return fmt.Errorf("invalid global flag: %w", err)
	}

	resolver, err := paths.NewResolver()
	if err != nil {
		return err
	}

	if global {
		return cleanGlobal(resolver)
	}
	return cleanProject()
}

// cleanProject deletes the current project's data directory only. Other
// projects and the shared tree are never touched.
func cleanProject() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	return cleanProjectDir(cwd, terminal.Confirm)
}

// cleanProjectDir holds the project-scoped clean logic with the
// confirmation prompt injected, so tests can drive both answers.
func cleanProjectDir(projectDir string, confirm func(string) bool) error {
	dataDir := paths.ProjectDataDir(projectDir)
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		fmt.Println("Nothing to clean.")
		return nil
	}

	size := state.DirSize(dataDir)
	fmt.Printf("Project data: %s (%s)\n", dataDir, humanize.IBytes(uint64(size)))

	if !confirm("Delete this directory?") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := os.RemoveAll(dataDir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dataDir, err)
	}
	fmt.Println("Project data removed.")
	return nil
}

// cleanGlobal deletes the shared tree and immediately recreates the empty
// skeleton so the next launch does not trip over missing directories.
func cleanGlobal(resolver *paths.Resolver) error {
	return cleanSharedRoot(resolver, terminal.Confirm)
}

func cleanSharedRoot(resolver *paths.Resolver, confirm func(string) bool) error {
	sharedRoot := resolver.SharedRoot()

	size := state.DirSize(sharedRoot)
	fmt.Printf("Shared data: %s (%s)\n", sharedRoot, humanize.IBytes(uint64(size)))
	fmt.Println("This removes synced credentials, container-side settings, and all package caches.")

	if !confirm("Delete shared data?") {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := os.RemoveAll(sharedRoot); err != nil {
		return fmt.Errorf("failed to remove %s: %w", sharedRoot, err)
	}
	if err := resolver.EnsureShared(); err != nil {
		return err
	}
	fmt.Println("Shared data removed and skeleton recreated.")
	return nil
}

func newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the container image from scratch",
		Long:  "Rebuilds the Docker image without the layer cache. Use this to recover\nfrom a corrupted or stale image.",
		RunE:  runRebuild,
	}
}

func runRebuild(cmd *cobra.Command, args []string) error {
	var manager docker.ContainerManager = docker.NewManager()
	if err := manager.CheckInstalled(); err != nil {
		return err
	}
	if err := manager.CheckDaemon(); err != nil {
		return err
	}

	log.Info("Rebuilding image without cache", "image", constants.DefaultImageName)
	if err := embedded.BuildImage(constants.DefaultImageName, true); err != nil {
		return fmt.Errorf("failed to rebuild image: %w", err)
	}
	log.Info("Image rebuilt", "image", constants.DefaultImageName)
	return nil
}
