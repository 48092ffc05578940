package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeanhaley32/claude-cage/internal/paths"
)

func alwaysYes(string) bool { return true }
func alwaysNo(string) bool  { return false }

func seedFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func requireContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected %s to survive: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}

func TestCleanProjectDir_NothingToClean(t *testing.T) {
	projectDir := t.TempDir()

	// Without a data directory there is nothing to confirm; a prompt here
	// would block a non-interactive caller.
	prompted := false
	err := cleanProjectDir(projectDir, func(string) bool {
		prompted = true
		return true
	})
	if err != nil {
		t.Fatalf("cleanProjectDir() error = %v", err)
	}
	if prompted {
		t.Errorf("confirmation prompt shown although there was nothing to clean")
	}
}

func TestCleanProjectDir_DeclineLeavesDataIntact(t *testing.T) {
	projectDir := t.TempDir()
	marker := filepath.Join(paths.VenvsDir(projectDir), "env", "pyvenv.cfg")
	seedFile(t, marker, "home = /usr")

	if err := cleanProjectDir(projectDir, alwaysNo); err != nil {
		t.Fatalf("cleanProjectDir() error = %v", err)
	}

	requireContent(t, marker, "home = /usr")
}

func TestCleanProjectDir_RemovesOnlyCurrentProject(t *testing.T) {
	home := t.TempDir()
	resolver := paths.NewResolverAt(home)

	current := filepath.Join(home, "work", "app-a")
	sibling := filepath.Join(home, "work", "app-b")
	seedFile(t, filepath.Join(paths.VenvsDir(current), "env", "marker"), "a")
	siblingMarker := filepath.Join(paths.VenvsDir(sibling), "env", "marker")
	seedFile(t, siblingMarker, "b")
	sharedMarker := filepath.Join(resolver.SharedConfigDir(), "credentials.json")
	seedFile(t, sharedMarker, "cred")

	if err := cleanProjectDir(current, alwaysYes); err != nil {
		t.Fatalf("cleanProjectDir() error = %v", err)
	}

	if _, err := os.Stat(paths.ProjectDataDir(current)); !os.IsNotExist(err) {
		t.Errorf("current project data dir still exists (err=%v)", err)
	}
	requireContent(t, siblingMarker, "b")
	requireContent(t, sharedMarker, "cred")
}

func TestCleanSharedRoot_DeclineLeavesDataIntact(t *testing.T) {
	home := t.TempDir()
	resolver := paths.NewResolverAt(home)
	marker := filepath.Join(resolver.SharedConfigDir(), "settings.json")
	seedFile(t, marker, "container-settings")

	if err := cleanSharedRoot(resolver, alwaysNo); err != nil {
		t.Fatalf("cleanSharedRoot() error = %v", err)
	}

	requireContent(t, marker, "container-settings")
}

func TestCleanSharedRoot_RecreatesSkeletonAndSparesProjects(t *testing.T) {
	home := t.TempDir()
	resolver := paths.NewResolverAt(home)
	sharedMarker := filepath.Join(resolver.SharedConfigDir(), "credentials.json")
	seedFile(t, sharedMarker, "cred")
	projectMarker := filepath.Join(paths.VenvsDir(filepath.Join(home, "proj")), "marker")
	seedFile(t, projectMarker, "keep")

	if err := cleanSharedRoot(resolver, alwaysYes); err != nil {
		t.Fatalf("cleanSharedRoot() error = %v", err)
	}

	if _, err := os.Stat(sharedMarker); !os.IsNotExist(err) {
		t.Errorf("shared credentials survived global clean (err=%v)", err)
	}
	for _, dir := range resolver.SharedDirs() {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("skeleton dir %s missing after global clean (err=%v)", dir, err)
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Errorf("failed to read %s: %v", dir, err)
		} else if len(entries) != 0 {
			t.Errorf("skeleton dir %s not empty after global clean: %v", dir, entries)
		}
	}
	requireContent(t, projectMarker, "keep")
}
