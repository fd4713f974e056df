package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/technioz/claude-agents/internal/core/platform"
)

// Names of files inside the templates filesystem.
const (
	agentTemplatesDir   = "agents"
	customAgentTemplate = "custom-agent-template.md"
)

// Installer copies bundled templates into platform agent directories.
type Installer struct {
	resolver  *Resolver
	templates fs.FS
}

// NewInstaller creates an Installer reading templates from fsys.
func NewInstaller(resolver *Resolver, templates fs.FS) *Installer {
	return &Installer{resolver: resolver, templates: templates}
}

// Resolver returns the resolver used for target paths.
func (inst *Installer) Resolver() *Resolver { return inst.resolver }

// EnsureAgentsDir creates the agents directory (and parents) if needed and
// returns its path.
func (inst *Installer) EnsureAgentsDir(scope Scope, platformID string) (string, error) {
	dir, err := inst.resolver.AgentsDir(scope, platformID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

// InstallAgents copies the named templates into dir, overwriting existing
// files. A failure for one agent does not stop the others.
func (inst *Installer) InstallAgents(names []string, dir string) []AgentResult {
	results := make([]AgentResult, 0, len(names))
	for _, name := range names {
		p, err := inst.installTemplate(name, dir)
		results = append(results, AgentResult{Name: name, Path: p, Err: err})
	}
	return results
}

// UpdateAgent overwrites an installed agent with its bundled template.
func (inst *Installer) UpdateAgent(name string, scope Scope, platformID string) (string, error) {
	clean, err := SanitizeAgentName(name)
	if err != nil {
		return "", err
	}
	dir, err := inst.resolver.AgentsDir(scope, platformID)
	if err != nil {
		return "", err
	}
	return inst.installTemplate(clean, dir)
}

// UpdateAgents runs UpdateAgent for each name and collects the results.
func (inst *Installer) UpdateAgents(names []string, scope Scope, platformID string) []AgentResult {
	results := make([]AgentResult, 0, len(names))
	for _, name := range names {
		p, err := inst.UpdateAgent(name, scope, platformID)
		results = append(results, AgentResult{Name: name, Path: p, Err: err})
	}
	return results
}

func (inst *Installer) installTemplate(name, dir string) (string, error) {
	clean, err := SanitizeAgentName(name)
	if err != nil {
		return "", err
	}

	src := path.Join(agentTemplatesDir, clean+".md")
	if _, err := fs.Stat(inst.templates, src); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &TemplateNotFoundError{Name: clean}
		}
		return "", fmt.Errorf("reading template %s: %w", src, err)
	}

	dst := filepath.Join(dir, clean+".md")
	if err := copyFromFS(inst.templates, src, dst); err != nil {
		return "", fmt.Errorf("copying %s: %w", clean, err)
	}
	return dst, nil
}

// InstallProtocol copies the protocol document into the platform directory.
func (inst *Installer) InstallProtocol(scope Scope, platformID string) (string, error) {
	dir, err := inst.resolver.ProtocolDir(scope, platformID)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, platform.ProtocolFileName)
	if err := copyFromFS(inst.templates, platform.ProtocolFileName, dst); err != nil {
		return "", fmt.Errorf("installing protocol: %w", err)
	}
	return dst, nil
}

// CreateCustomAgent renders the custom agent template with meta and writes
// it as <name>.md, creating the agents directory if needed.
func (inst *Installer) CreateCustomAgent(name string, scope Scope, platformID string, meta AgentMetadata) (string, error) {
	clean, err := SanitizeAgentName(name)
	if err != nil {
		return "", err
	}

	tmpl, err := fs.ReadFile(inst.templates, customAgentTemplate)
	if err != nil {
		return "", fmt.Errorf("reading custom agent template: %w", err)
	}

	dir, err := inst.EnsureAgentsDir(scope, platformID)
	if err != nil {
		return "", err
	}

	content := RenderCustomAgent(string(tmpl), clean, meta)
	dst := filepath.Join(dir, clean+".md")
	if err := os.WriteFile(dst, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", dst, err)
	}
	return dst, nil
}

// RenderCustomAgent substitutes the template placeholders. Empty metadata
// fields take the defaults.
func RenderCustomAgent(tmpl, name string, meta AgentMetadata) string {
	meta = meta.withDefaults()
	r := strings.NewReplacer(
		"{AGENT_NAME}", name,
		"{DESCRIPTION}", meta.Description,
		"{MODEL}", meta.Model,
		"{COLOR}", meta.Color,
	)
	return r.Replace(tmpl)
}

// InstalledAgents lists the agents in the scope's agents directory, sorted.
// A missing directory yields an empty list.
func (inst *Installer) InstalledAgents(scope Scope, platformID string) ([]string, error) {
	dir, err := inst.resolver.AgentsDir(scope, platformID)
	if err != nil {
		return nil, err
	}
	return ListAgentFiles(dir)
}

// ListAgentFiles returns the base names of the .md files in dir.
func ListAgentFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names, nil
}
