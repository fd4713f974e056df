package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRemove(t *testing.T) {
	inst, _, cwd := newTestInstaller(t)
	dir, err := inst.EnsureAgentsDir(ScopeLocal, "claude")
	if err != nil {
		t.Fatal(err)
	}
	inst.InstallAgents([]string{"ARCHITECT", "DEVELOPER"}, dir)

	rem := NewRemover(inst.Resolver())
	got, err := rem.Remove("ARCHITECT", ScopeLocal, "claude")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	want := filepath.Join(cwd, ".claude", "agents", "ARCHITECT.md")
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if _, err := os.Stat(want); !os.IsNotExist(err) {
		t.Error("agent file should be gone")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("non-empty agents directory should remain")
	}

	// Removing the last agent removes the empty directory too.
	if _, err := rem.Remove("DEVELOPER", ScopeLocal, "claude"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("empty agents directory should be removed")
	}
	if _, err := os.Stat(filepath.Join(cwd, ".claude")); err != nil {
		t.Error("platform directory should be kept")
	}
}

func TestRemove_Errors(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	rem := NewRemover(inst.Resolver())

	if _, err := rem.Remove("../etc", ScopeLocal, "claude"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("traversal: err = %v, want ErrInvalidName", err)
	}
	if _, err := rem.Remove("GHOST", ScopeLocal, "claude"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("missing: err = %v, want not found", err)
	}
	if _, err := rem.Remove("ARCHITECT", ScopeLocal, "vscode"); err == nil {
		t.Error("unknown platform: expected error")
	}
}

func TestRemoveAll_ContinuesAfterFailure(t *testing.T) {
	inst, home, _ := newTestInstaller(t)
	dir, err := inst.EnsureAgentsDir(ScopeGlobal, "cursor")
	if err != nil {
		t.Fatal(err)
	}
	inst.InstallAgents([]string{"ARCHITECT", "DEVELOPER"}, dir)

	results := NewRemover(inst.Resolver()).RemoveAll([]string{"ARCHITECT", "GHOST", "DEVELOPER"}, ScopeGlobal, "cursor")
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "GHOST" {
		t.Errorf("failed = %+v, want only GHOST", failed)
	}
	if _, err := os.Stat(filepath.Join(home, ".cursor", "agents")); !os.IsNotExist(err) {
		t.Error("agents directory should be removed once empty")
	}
}
