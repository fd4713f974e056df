package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/technioz/claude-agents/internal/core/platform"
)

// Resolver computes on-disk locations for a platform and scope. Paths are
// recomputed on every call.
type Resolver struct {
	platforms *platform.Registry
	homeDir   func() (string, error)
	workDir   func() (string, error)
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithHomeDir overrides how the global base directory is found.
func WithHomeDir(fn func() (string, error)) ResolverOption {
	return func(r *Resolver) { r.homeDir = fn }
}

// WithWorkDir overrides how the local base directory is found.
func WithWorkDir(fn func() (string, error)) ResolverOption {
	return func(r *Resolver) { r.workDir = fn }
}

// NewResolver creates a Resolver over the given platform registry.
func NewResolver(platforms *platform.Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		platforms: platforms,
		homeDir:   os.UserHomeDir,
		workDir:   os.Getwd,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Platforms returns the registry the resolver was built with.
func (r *Resolver) Platforms() *platform.Registry { return r.platforms }

// AgentsDir returns the absolute agents directory for scope and platform.
func (r *Resolver) AgentsDir(scope Scope, platformID string) (string, error) {
	p, err := r.platforms.Lookup(platformID)
	if err != nil {
		return "", err
	}
	return r.join(scope, p.AgentsPath)
}

// ProtocolDir returns the absolute platform directory that holds the
// protocol document.
func (r *Resolver) ProtocolDir(scope Scope, platformID string) (string, error) {
	p, err := r.platforms.Lookup(platformID)
	if err != nil {
		return "", err
	}
	return r.join(scope, p.Directory)
}

// AgentFilePath returns the path of the <name>.md file. The name must already
// have passed SanitizeAgentName.
func (r *Resolver) AgentFilePath(scope Scope, platformID, name string) (string, error) {
	dir, err := r.AgentsDir(scope, platformID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+".md"), nil
}

// AgentExists reports whether the agent file is present.
func (r *Resolver) AgentExists(scope Scope, platformID, name string) (bool, error) {
	path, err := r.AgentFilePath(scope, platformID, name)
	if err != nil {
		return false, err
	}
	return pathExists(path)
}

// join places the "/"-separated relative path under the scope's base.
// Anything other than ScopeGlobal resolves against the working directory.
func (r *Resolver) join(scope Scope, rel string) (string, error) {
	base, err := r.base(scope)
	if err != nil {
		return "", err
	}
	parts := append([]string{base}, strings.Split(rel, "/")...)
	return filepath.Join(parts...), nil
}

func (r *Resolver) base(scope Scope) (string, error) {
	if scope == ScopeGlobal {
		home, err := r.homeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return home, nil
	}
	cwd, err := r.workDir()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
