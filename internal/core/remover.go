package core

import (
	"fmt"
	"os"
)

// Remover deletes installed agent files.
type Remover struct {
	resolver *Resolver
}

// NewRemover creates a Remover resolving paths with resolver.
func NewRemover(resolver *Resolver) *Remover {
	return &Remover{resolver: resolver}
}

// Remove deletes one agent file from the scope's agents directory and
// returns the removed path. The agents directory is removed as well once it
// is empty.
func (r *Remover) Remove(name string, scope Scope, platformID string) (string, error) {
	clean, err := SanitizeAgentName(name)
	if err != nil {
		return "", err
	}

	path, err := r.resolver.AgentFilePath(scope, platformID, clean)
	if err != nil {
		return "", err
	}
	ok, err := fileExists(path)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("agent %q not found at %s", clean, path)
	}

	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("removing %s: %w", path, err)
	}

	dir, err := r.resolver.AgentsDir(scope, platformID)
	if err == nil {
		cleanupEmptyDir(dir)
	}
	return path, nil
}

// RemoveAll runs Remove for each name. A failure for one agent does not stop
// the others.
func (r *Remover) RemoveAll(names []string, scope Scope, platformID string) []AgentResult {
	results := make([]AgentResult, 0, len(names))
	for _, name := range names {
		p, err := r.Remove(name, scope, platformID)
		results = append(results, AgentResult{Name: name, Path: p, Err: err})
	}
	return results
}

// cleanupEmptyDir removes a directory if it is empty.
func cleanupEmptyDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	if len(entries) == 0 {
		_ = os.Remove(dir)
	}
}
