package credsync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeanhaley32/claude-cage/internal/constants"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestSync_MissingHostRoot(t *testing.T) {
	sharedConfig := t.TempDir()
	hostRoot := filepath.Join(t.TempDir(), "does-not-exist")

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("Sync() with missing host root error = %v, want nil", err)
	}

	entries, err := os.ReadDir(sharedConfig)
	if err != nil {
		t.Fatalf("failed to read shared config dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("shared config dir not empty after sync from missing host root: %v", entries)
	}
}

func TestSync_CredentialsCopied(t *testing.T) {
	hostRoot := t.TempDir()
	sharedConfig := t.TempDir()
	writeFile(t, filepath.Join(hostRoot, "credentials.json"), "content-a")

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	got := readFile(t, filepath.Join(sharedConfig, "credentials.json"))
	if got != "content-a" {
		t.Errorf("shared credentials.json = %q, want %q", got, "content-a")
	}
}

func TestSync_CredentialsOverwrittenOnRotation(t *testing.T) {
	hostRoot := t.TempDir()
	sharedConfig := t.TempDir()
	writeFile(t, filepath.Join(hostRoot, ".credentials.json"), "rotated")
	writeFile(t, filepath.Join(sharedConfig, ".credentials.json"), "stale")

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	got := readFile(t, filepath.Join(sharedConfig, ".credentials.json"))
	if got != "rotated" {
		t.Errorf("shared .credentials.json = %q, want %q", got, "rotated")
	}
}

func TestSync_SettingsSeededOnce(t *testing.T) {
	hostRoot := t.TempDir()
	sharedConfig := t.TempDir()
	writeFile(t, filepath.Join(hostRoot, constants.SettingsFileName), "host-settings")

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	got := readFile(t, filepath.Join(sharedConfig, constants.SettingsFileName))
	if got != "host-settings" {
		t.Errorf("seeded settings = %q, want %q", got, "host-settings")
	}
}

func TestSync_SettingsNeverClobbered(t *testing.T) {
	hostRoot := t.TempDir()
	sharedConfig := t.TempDir()
	writeFile(t, filepath.Join(hostRoot, constants.SettingsFileName), "host-version")
	writeFile(t, filepath.Join(sharedConfig, constants.SettingsFileName), "container-version")

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	got := readFile(t, filepath.Join(sharedConfig, constants.SettingsFileName))
	if got != "container-version" {
		t.Errorf("shared settings = %q, want untouched %q", got, "container-version")
	}
}

func TestSync_Idempotent(t *testing.T) {
	hostRoot := t.TempDir()
	sharedConfig := t.TempDir()
	writeFile(t, filepath.Join(hostRoot, "credentials.json"), "cred")
	writeFile(t, filepath.Join(hostRoot, ".credentials.json"), "dot-cred")
	writeFile(t, filepath.Join(hostRoot, constants.SettingsFileName), "settings")

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("first Sync() error = %v", err)
	}

	snapshot := map[string]string{}
	entries, err := os.ReadDir(sharedConfig)
	if err != nil {
		t.Fatalf("failed to read shared config dir: %v", err)
	}
	for _, entry := range entries {
		snapshot[entry.Name()] = readFile(t, filepath.Join(sharedConfig, entry.Name()))
	}

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("second Sync() error = %v", err)
	}

	entries, err = os.ReadDir(sharedConfig)
	if err != nil {
		t.Fatalf("failed to read shared config dir: %v", err)
	}
	if len(entries) != len(snapshot) {
		t.Fatalf("second sync changed file count: %d, want %d", len(entries), len(snapshot))
	}
	for _, entry := range entries {
		got := readFile(t, filepath.Join(sharedConfig, entry.Name()))
		if got != snapshot[entry.Name()] {
			t.Errorf("second sync changed %s: %q, want %q", entry.Name(), got, snapshot[entry.Name()])
		}
	}
}

func TestSync_HostRootNeverWritten(t *testing.T) {
	hostRoot := t.TempDir()
	sharedConfig := t.TempDir()
	writeFile(t, filepath.Join(hostRoot, "credentials.json"), "cred")
	writeFile(t, filepath.Join(sharedConfig, constants.SettingsFileName), "container-settings")

	if err := Sync(hostRoot, sharedConfig); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	entries, err := os.ReadDir(hostRoot)
	if err != nil {
		t.Fatalf("failed to read host root: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("host root modified: %d entries, want 1", len(entries))
	}
	if got := readFile(t, filepath.Join(hostRoot, "credentials.json")); got != "cred" {
		t.Errorf("host credentials.json modified: %q", got)
	}
}
