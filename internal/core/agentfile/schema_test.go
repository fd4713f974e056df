package agentfile

import (
	"encoding/json"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/technioz/claude-agents/internal/core"
)

func checkMetadata(t *testing.T, raw string) []Issue {
	t.Helper()
	doc, err := Parse([]byte(raw), "test.md")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	issues, err := doc.CheckMetadata()
	if err != nil {
		t.Fatalf("CheckMetadata: %v", err)
	}
	return issues
}

func TestCheckMetadata_Valid(t *testing.T) {
	issues := checkMetadata(t, "---\nname: REVIEWER\ndescription: Reviews pull requests\nmodel: opus\ncolor: blue\n---\n# REVIEWER\n")
	if issues == nil || len(issues) != 0 {
		t.Errorf("issues = %#v, want empty", issues)
	}
}

func TestCheckMetadata_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		fm    string
		field string
	}{
		{"bad model", "name: A\ndescription: Long enough text\nmodel: gpt\ncolor: blue", "model"},
		{"bad color", "name: A\ndescription: Long enough text\nmodel: opus\ncolor: beige", "color"},
		{"short description", "name: A\ndescription: short\nmodel: opus\ncolor: blue", "description"},
		{"name with slash", "name: a/b\ndescription: Long enough text\nmodel: opus\ncolor: blue", "name"},
		{"numeric name", "name: 42\ndescription: Long enough text\nmodel: opus\ncolor: blue", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := checkMetadata(t, "---\n"+tt.fm+"\n---\nbody\n")
			if len(issues) != 1 {
				t.Fatalf("issues = %v, want exactly one", issues)
			}
			if issues[0].Field != tt.field {
				t.Errorf("field = %q, want %q", issues[0].Field, tt.field)
			}
			if !strings.HasPrefix(issues[0].String(), tt.field+": ") {
				t.Errorf("String() = %q", issues[0].String())
			}
		})
	}
}

func TestCheckMetadata_MissingFields(t *testing.T) {
	issues := checkMetadata(t, "# no frontmatter\n")
	if len(issues) == 0 {
		t.Fatal("expected issues for missing metadata")
	}
	joined := ""
	for _, i := range issues {
		joined += i.String() + "\n"
	}
	for _, field := range []string{"name", "description", "model", "color"} {
		if !strings.Contains(joined, field) {
			t.Errorf("issues do not mention %q:\n%s", field, joined)
		}
	}
}

// The schema enums must track the choices offered by create.
func TestSchema_MatchesMetadataChoices(t *testing.T) {
	data, err := os.ReadFile("agent.schema.json")
	if err != nil {
		t.Fatal(err)
	}
	var schema struct {
		Properties map[string]struct {
			Enum      []string `json:"enum"`
			MinLength int      `json:"minLength"`
			MaxLength int      `json:"maxLength"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatal(err)
	}

	if got := schema.Properties["model"].Enum; !slices.Equal(got, core.Models) {
		t.Errorf("model enum = %v, want %v", got, core.Models)
	}
	if got := schema.Properties["color"].Enum; !slices.Equal(got, core.Colors) {
		t.Errorf("color enum = %v, want %v", got, core.Colors)
	}
	desc := schema.Properties["description"]
	if desc.MinLength != core.MinDescriptionLen || desc.MaxLength != core.MaxDescriptionLen {
		t.Errorf("description bounds = %d..%d, want %d..%d",
			desc.MinLength, desc.MaxLength, core.MinDescriptionLen, core.MaxDescriptionLen)
	}
}
