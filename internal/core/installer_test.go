package core

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"
)

func testTemplates() fstest.MapFS {
	return fstest.MapFS{
		"agents/ARCHITECT.md": {Data: []byte("---\nname: ARCHITECT\n---\n## Purpose\n## Duty\n## Instructions\n")},
		"agents/DEVELOPER.md": {Data: []byte("---\nname: DEVELOPER\n---\n## Purpose\n## Duty\n## Instructions\n")},
		"AGENTS_PROTOCOL.md":  {Data: []byte("# Agents Protocol\n")},
		"custom-agent-template.md": {Data: []byte(
			"---\nname: {AGENT_NAME}\ndescription: {DESCRIPTION}\nmodel: {MODEL}\ncolor: {COLOR}\n---\n# {AGENT_NAME}\n")},
		"catalog.yaml": {Data: []byte("agents:\n  - name: ARCHITECT\n    summary: Design\n  - name: DEVELOPER\n    summary: Code\n")},
	}
}

func newTestInstaller(t *testing.T) (*Installer, string, string) {
	t.Helper()
	r, home, cwd := newTestResolver(t)
	return NewInstaller(r, testTemplates()), home, cwd
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// EnsureAgentsDir
// ---------------------------------------------------------------------------

func TestEnsureAgentsDir(t *testing.T) {
	inst, home, cwd := newTestInstaller(t)

	tests := []struct {
		scope Scope
		want  string
	}{
		{ScopeGlobal, filepath.Join(home, ".claude", "agents")},
		{ScopeLocal, filepath.Join(cwd, ".claude", "agents")},
	}
	for _, tt := range tests {
		got, err := inst.EnsureAgentsDir(tt.scope, "claude")
		if err != nil {
			t.Fatalf("EnsureAgentsDir(%s) error: %v", tt.scope, err)
		}
		if got != tt.want {
			t.Errorf("EnsureAgentsDir(%s) = %q, want %q", tt.scope, got, tt.want)
		}
		if !DirExists(got) {
			t.Errorf("%s was not created", got)
		}
		// Idempotent.
		if _, err := inst.EnsureAgentsDir(tt.scope, "claude"); err != nil {
			t.Errorf("second EnsureAgentsDir(%s) error: %v", tt.scope, err)
		}
	}
}

// ---------------------------------------------------------------------------
// InstallAgents
// ---------------------------------------------------------------------------

func TestInstallAgents(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	dir, err := inst.EnsureAgentsDir(ScopeLocal, "claude")
	if err != nil {
		t.Fatal(err)
	}

	results := inst.InstallAgents([]string{"ARCHITECT", "DEVELOPER"}, dir)
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("unexpected failures: %+v", failed)
	}
	for _, r := range results {
		if r.Path != filepath.Join(dir, r.Name+".md") {
			t.Errorf("%s: Path = %q", r.Name, r.Path)
		}
		if !strings.Contains(readFile(t, r.Path), "name: "+r.Name) {
			t.Errorf("%s: unexpected content", r.Name)
		}
	}
}

func TestInstallAgents_Empty(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	results := inst.InstallAgents(nil, t.TempDir())
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestInstallAgents_PartialFailure(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	dir := t.TempDir()

	results := inst.InstallAgents([]string{"../evil", "MISSING", "ARCHITECT"}, dir)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if !errors.Is(results[0].Err, ErrInvalidName) {
		t.Errorf("../evil: err = %v, want ErrInvalidName", results[0].Err)
	}
	var tnf *TemplateNotFoundError
	if !errors.As(results[1].Err, &tnf) || tnf.Name != "MISSING" {
		t.Errorf("MISSING: err = %v, want *TemplateNotFoundError", results[1].Err)
	}
	if !strings.Contains(results[1].Err.Error(), "MISSING.md") {
		t.Errorf("MISSING: error %q should name the template file", results[1].Err)
	}
	if results[2].Err != nil {
		t.Errorf("ARCHITECT: unexpected error %v", results[2].Err)
	}
	if len(Failed(results)) != 2 {
		t.Errorf("Failed() = %d, want 2", len(Failed(results)))
	}

	// Nothing escaped the target directory.
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "evil.md")); err == nil {
		t.Error("traversal wrote outside the target directory")
	}
}

func TestInstallAgents_Overwrites(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	dir := t.TempDir()
	target := filepath.Join(dir, "ARCHITECT.md")
	if err := os.WriteFile(target, []byte("locally edited, much longer than the template content ........"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := inst.InstallAgents([]string{"ARCHITECT"}, dir)
	if results[0].Err != nil {
		t.Fatal(results[0].Err)
	}
	if got := readFile(t, target); strings.Contains(got, "locally edited") || strings.HasSuffix(got, "....") {
		t.Errorf("file not fully overwritten: %q", got)
	}
}

// ---------------------------------------------------------------------------
// UpdateAgent
// ---------------------------------------------------------------------------

func TestUpdateAgent(t *testing.T) {
	inst, home, _ := newTestInstaller(t)

	path, err := inst.UpdateAgent("DEVELOPER", ScopeGlobal, "cursor")
	if err != nil {
		t.Fatalf("UpdateAgent() error: %v", err)
	}
	if want := filepath.Join(home, ".cursor", "agents", "DEVELOPER.md"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if !strings.Contains(readFile(t, path), "DEVELOPER") {
		t.Error("template content not written")
	}
}

func TestUpdateAgent_Errors(t *testing.T) {
	inst, _, _ := newTestInstaller(t)

	if _, err := inst.UpdateAgent("a/b", ScopeLocal, "claude"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("a/b: err = %v, want ErrInvalidName", err)
	}
	if _, err := inst.UpdateAgent("CUSTOM", ScopeLocal, "claude"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("CUSTOM: err = %v, want ErrTemplateNotFound", err)
	}
	if _, err := inst.UpdateAgent("ARCHITECT", ScopeLocal, "nope"); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestUpdateAgents_ContinuesAfterFailure(t *testing.T) {
	inst, _, cwd := newTestInstaller(t)

	results := inst.UpdateAgents([]string{"CUSTOM", "ARCHITECT"}, ScopeLocal, "claude")
	if results[0].Err == nil {
		t.Error("CUSTOM: expected error")
	}
	if results[1].Err != nil {
		t.Errorf("ARCHITECT: %v", results[1].Err)
	}
	if _, err := os.Stat(filepath.Join(cwd, ".claude", "agents", "ARCHITECT.md")); err != nil {
		t.Errorf("ARCHITECT not updated: %v", err)
	}
}

// ---------------------------------------------------------------------------
// InstallProtocol
// ---------------------------------------------------------------------------

func TestInstallProtocol(t *testing.T) {
	inst, _, cwd := newTestInstaller(t)
	path, err := inst.InstallProtocol(ScopeLocal, "cursor")
	if err != nil {
		t.Fatalf("InstallProtocol() error: %v", err)
	}
	if want := filepath.Join(cwd, ".cursor", "AGENTS_PROTOCOL.md"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if readFile(t, path) != "# Agents Protocol\n" {
		t.Error("unexpected protocol content")
	}
}

// ---------------------------------------------------------------------------
// CreateCustomAgent
// ---------------------------------------------------------------------------

func TestCreateCustomAgent(t *testing.T) {
	inst, _, cwd := newTestInstaller(t)
	path, err := inst.CreateCustomAgent("MY-AGENT", ScopeLocal, "claude", AgentMetadata{
		Description: "Reviews pull requests",
		Model:       "opus",
		Color:       "blue",
	})
	if err != nil {
		t.Fatalf("CreateCustomAgent() error: %v", err)
	}
	if want := filepath.Join(cwd, ".claude", "agents", "MY-AGENT.md"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	want := "---\nname: MY-AGENT\ndescription: Reviews pull requests\nmodel: opus\ncolor: blue\n---\n# MY-AGENT\n"
	if got := readFile(t, path); got != want {
		t.Errorf("content =\n%s\nwant\n%s", got, want)
	}
}

func TestCreateCustomAgent_Defaults(t *testing.T) {
	inst, _, _ := newTestInstaller(t)
	path, err := inst.CreateCustomAgent("X", ScopeGlobal, "claude", AgentMetadata{})
	if err != nil {
		t.Fatal(err)
	}
	got := readFile(t, path)
	for _, want := range []string{"description: Custom agent", "model: sonnet", "color: gray"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestCreateCustomAgent_RejectsBadName(t *testing.T) {
	inst, _, cwd := newTestInstaller(t)
	_, err := inst.CreateCustomAgent("../../etc/passwd", ScopeLocal, "claude", AgentMetadata{})
	if !errors.Is(err, ErrInvalidName) {
		t.Fatalf("err = %v, want ErrInvalidName", err)
	}
	if DirExists(filepath.Join(cwd, ".claude")) {
		t.Error("directory created before the name was validated")
	}
}

func TestRenderCustomAgent_ReplacesAll(t *testing.T) {
	out := RenderCustomAgent("{AGENT_NAME} {AGENT_NAME} {MODEL}", "A", AgentMetadata{Model: "haiku"})
	if out != "A A haiku" {
		t.Errorf("RenderCustomAgent() = %q", out)
	}
}

// ---------------------------------------------------------------------------
// InstalledAgents
// ---------------------------------------------------------------------------

func TestInstalledAgents(t *testing.T) {
	inst, _, cwd := newTestInstaller(t)

	got, err := inst.InstalledAgents(ScopeLocal, "claude")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list for missing dir, got %v", got)
	}

	dir := filepath.Join(cwd, ".claude", "agents")
	if err := os.MkdirAll(filepath.Join(dir, "sub.md"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"ZED.md", "ALPHA.md", "notes.txt", "README"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err = inst.InstalledAgents(ScopeLocal, "claude")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"ALPHA", "ZED"}; !reflect.DeepEqual(got, want) {
		t.Errorf("InstalledAgents() = %v, want %v", got, want)
	}
}

// ---------------------------------------------------------------------------
// AgentMetadata
// ---------------------------------------------------------------------------

func TestAgentMetadata_Validate(t *testing.T) {
	tests := []struct {
		name    string
		meta    AgentMetadata
		wantErr string
	}{
		{"ok", AgentMetadata{Description: "Long enough text", Model: "opus", Color: "pink"}, ""},
		{"defaults allowed", AgentMetadata{Description: "Long enough text"}, ""},
		{"short description", AgentMetadata{Description: "short"}, "at least 10"},
		{"long description", AgentMetadata{Description: strings.Repeat("x", 501)}, "less than 500"},
		{"bad model", AgentMetadata{Description: "Long enough text", Model: "gpt"}, "unknown model"},
		{"bad color", AgentMetadata{Description: "Long enough text", Color: "teal"}, "unknown color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meta.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
