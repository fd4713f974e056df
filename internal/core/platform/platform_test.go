package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	r := Builtin()
	ids := r.IDs()
	if len(ids) != 2 || ids[0] != "claude" || ids[1] != "cursor" {
		t.Fatalf("IDs() = %v, want [claude cursor]", ids)
	}
	if r.Default() != "claude" {
		t.Errorf("Default() = %q, want %q", r.Default(), "claude")
	}
}

func TestPlatformFields(t *testing.T) {
	tests := []struct {
		id          string
		displayName string
		directory   string
		agentsPath  string
		protocol    string
	}{
		{"claude", "Claude Code", ".claude", ".claude/agents", ".claude/AGENTS_PROTOCOL.md"},
		{"cursor", "Cursor", ".cursor", ".cursor/agents", ".cursor/AGENTS_PROTOCOL.md"},
	}

	r := Builtin()
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			p, err := r.Lookup(tt.id)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.id, err)
			}
			if p.DisplayName != tt.displayName {
				t.Errorf("DisplayName = %q, want %q", p.DisplayName, tt.displayName)
			}
			if p.Directory != tt.directory {
				t.Errorf("Directory = %q, want %q", p.Directory, tt.directory)
			}
			if p.AgentsPath != tt.agentsPath {
				t.Errorf("AgentsPath = %q, want %q", p.AgentsPath, tt.agentsPath)
			}
			if p.ProtocolPath() != tt.protocol {
				t.Errorf("ProtocolPath() = %q, want %q", p.ProtocolPath(), tt.protocol)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Builtin().Lookup("codex")
	if err == nil {
		t.Fatal("expected error for unknown platform")
	}
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Errorf("errors.Is(err, ErrUnknownPlatform) = false for %v", err)
	}
	var upe *UnknownPlatformError
	if !errors.As(err, &upe) {
		t.Fatalf("expected *UnknownPlatformError, got %T", err)
	}
	if upe.ID != "codex" {
		t.Errorf("ID = %q", upe.ID)
	}
	if !strings.Contains(err.Error(), "claude, cursor") {
		t.Errorf("error should list supported platforms: %v", err)
	}
}

func TestHas(t *testing.T) {
	r := Builtin()
	if !r.Has("cursor") {
		t.Error("Has(cursor) = false")
	}
	if r.Has("goose") {
		t.Error("Has(goose) = true")
	}
}

func TestNewRegistry_Custom(t *testing.T) {
	fake := Platform{ID: "fake", DisplayName: "Fake", Directory: ".fake", AgentsPath: ".fake/nested/agents"}
	r, err := NewRegistry("fake", fake)
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}
	got, err := r.Lookup("fake")
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if got != fake {
		t.Errorf("Lookup() = %+v, want %+v", got, fake)
	}
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name      string
		def       string
		platforms []Platform
		wantErr   string
	}{
		{
			name:      "agents path outside directory",
			def:       "bad",
			platforms: []Platform{{ID: "bad", Directory: ".bad", AgentsPath: ".other/agents"}},
			wantErr:   "not inside",
		},
		{
			name:      "sibling prefix is not a descendant",
			def:       "bad",
			platforms: []Platform{{ID: "bad", Directory: ".bad", AgentsPath: ".badx/agents"}},
			wantErr:   "not inside",
		},
		{
			name:      "duplicate id",
			def:       "a",
			platforms: []Platform{{ID: "a", Directory: ".a", AgentsPath: ".a/agents"}, {ID: "a", Directory: ".a", AgentsPath: ".a/agents"}},
			wantErr:   "duplicate",
		},
		{
			name:      "missing default",
			def:       "nope",
			platforms: []Platform{{ID: "a", Directory: ".a", AgentsPath: ".a/agents"}},
			wantErr:   "default platform",
		},
		{
			name:      "empty id",
			def:       "",
			platforms: []Platform{{Directory: ".a", AgentsPath: ".a/agents"}},
			wantErr:   "id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.def, tt.platforms...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	r := Builtin()
	all := r.All()
	all[0].ID = "mutated"
	if _, err := r.Lookup("claude"); err != nil {
		t.Errorf("registry was mutated through All(): %v", err)
	}
	ids := r.IDs()
	ids[0] = "mutated"
	if r.IDs()[0] != "claude" {
		t.Error("registry was mutated through IDs()")
	}
}
