// Package credsync implements the one-way credential propagation policy
// from the host Claude configuration directory into the shared container
// configuration directory.
//
// Credential files are copied on every launch so the shared copy tracks
// host-side rotation. The settings file is seeded only once: after the
// first launch the container-side settings are owned by the tool running
// inside the container and must never be clobbered from the host. Nothing
// is ever copied back toward the host.
package credsync

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/jeanhaley32/claude-cage/internal/constants"
)

// Sync applies the copy policy from hostRoot into sharedConfig.
//
// A missing hostRoot is not an error: the user authenticates interactively
// inside the container instead. Real I/O failures are returned.
func Sync(hostRoot, sharedConfig string) error {
	if _, err := os.Stat(hostRoot); err != nil {
		log.Info("No host Claude configuration found; authenticate inside the container", "path", hostRoot)
		return nil
	}

	// Copy-always: credentials may have rotated on the host.
	for _, name := range constants.CredentialFileNames {
		src := filepath.Join(hostRoot, name)
		if _, err := os.Stat(src); err != nil {
			continue
		}
		dst := filepath.Join(sharedConfig, name)
		if err := copyFile(src, dst, constants.FilePermissions); err != nil {
			return fmt.Errorf("failed to sync %s: %w", name, err)
		}
	}

	// Copy-once: host settings only seed the very first launch. Once the
	// shared copy exists it belongs to the container side.
	dst := filepath.Join(sharedConfig, constants.SettingsFileName)
	if _, err := os.Stat(dst); err == nil {
		return nil
	}
	src := filepath.Join(hostRoot, constants.SettingsFileName)
	if _, err := os.Stat(src); err != nil {
		return nil
	}
	if err := copyFile(src, dst, 0644); err != nil {
		return fmt.Errorf("failed to seed %s: %w", constants.SettingsFileName, err)
	}
	return nil
}

// copyFile copies src to dst as a whole-file overwrite.
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
