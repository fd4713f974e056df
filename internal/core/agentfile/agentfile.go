// Package agentfile parses agent Markdown files: an optional YAML
// frontmatter block delimited by "---" lines followed by the Markdown body.
package agentfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed agent file.
type Document struct {
	Frontmatter map[string]any // all YAML frontmatter fields; empty if none
	Body        string         // Markdown after the frontmatter
}

// ParseFile reads and parses the agent file at path.
func ParseFile(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(raw, path)
}

// Parse splits raw into frontmatter and body. Content without a leading
// "---" is treated as all body. The source parameter is used only for error
// messages.
func Parse(raw []byte, source string) (*Document, error) {
	content := string(raw)

	if !strings.HasPrefix(strings.TrimSpace(content), "---") {
		return &Document{Frontmatter: map[string]any{}, Body: content}, nil
	}

	start := strings.Index(content, "---")
	rest := content[start+3:]

	// Skip the newline after opening ---
	if strings.HasPrefix(rest, "\r\n") {
		rest = rest[2:]
	} else if strings.HasPrefix(rest, "\n") {
		rest = rest[1:]
	}

	end := strings.Index(rest, "\n---")
	if end < 0 {
		return nil, fmt.Errorf("no closing frontmatter delimiter in %s", source)
	}

	fmContent := rest[:end]
	body := rest[end+4:] // skip "\n---"

	if strings.HasPrefix(body, "\r\n") {
		body = body[2:]
	} else if strings.HasPrefix(body, "\n") {
		body = body[1:]
	}

	var fm map[string]any
	if err := yaml.Unmarshal([]byte(fmContent), &fm); err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", source, err)
	}
	if fm == nil {
		fm = make(map[string]any)
	}

	return &Document{Frontmatter: fm, Body: body}, nil
}

// Name returns the "name" frontmatter field.
func (d *Document) Name() string { return d.str("name") }

// Description returns the "description" frontmatter field.
func (d *Document) Description() string { return d.str("description") }

// Model returns the "model" frontmatter field.
func (d *Document) Model() string { return d.str("model") }

// Color returns the "color" frontmatter field.
func (d *Document) Color() string { return d.str("color") }

func (d *Document) str(key string) string {
	switch v := d.Frontmatter[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
