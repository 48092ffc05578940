package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jeanhaley32/claude-cage/internal/platform"
)

var version = "0.1.0"

// exitCode carries the launched container's exit status out of cobra so the
// launcher can inherit it.
var exitCode int

func main() {
	log.SetReportTimestamp(false)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "claude-cage",
		Short:   "Run Claude Code in an isolated Docker container",
		Long:    "claude-cage launches Claude Code inside an isolated container,\nwith per-project virtualenvs and tools, shared package caches, and\none-way credential sync from your host Claude configuration.",
		Version: version,
		RunE:    runLaunch,
	}

	rootCmd.Flags().Bool("yolo", false, "Launch Claude Code with permission prompts disabled")
	rootCmd.Flags().Bool("shell", false, "Launch a plain shell instead of Claude Code")
	rootCmd.MarkFlagsMutuallyExclusive("yolo", "shell")

	rootCmd.AddCommand(
		newStatusCmd(),
		newCleanCmd(),
		newRebuildCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("claude-cage version %s\n", version)
			fmt.Printf("Platform: %s\n", platform.Detect())
		},
	}
}
