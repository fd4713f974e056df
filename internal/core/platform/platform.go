// Package platform defines the target tools that agents can be installed for.
//
// A Platform describes where a tool (Claude Code, Cursor) keeps its
// configuration directory and its agents directory, both relative to a base
// directory chosen by the install scope. Platforms are plain values collected
// into an immutable Registry that is passed to whoever needs it.
package platform

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnknownPlatform is matched by *UnknownPlatformError via errors.Is.
var ErrUnknownPlatform = errors.New("unknown platform")

// UnknownPlatformError is returned when a platform id is not registered.
type UnknownPlatformError struct {
	ID        string
	Supported []string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s. Supported platforms: %s",
		e.ID, strings.Join(e.Supported, ", "))
}

// Is reports whether target is ErrUnknownPlatform.
func (e *UnknownPlatformError) Is(target error) bool { return target == ErrUnknownPlatform }

// Platform describes one target tool and its directory convention.
type Platform struct {
	ID          string // machine name: "claude", "cursor"
	Name        string // integration name shown in prompts
	DisplayName string // human name: "Claude Code", "Cursor"
	Emoji       string
	Directory   string // base-relative config directory, "/"-separated
	AgentsPath  string // base-relative agents directory, "/"-separated
}

// ProtocolPath returns the base-relative path of the protocol companion file.
func (p Platform) ProtocolPath() string {
	return path.Join(p.Directory, ProtocolFileName)
}

// ProtocolFileName is the companion document installed next to the agents.
const ProtocolFileName = "AGENTS_PROTOCOL.md"

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

// Builtin returns a registry holding the shipped platforms with Claude Code
// as the default.
func Builtin() *Registry {
	r, err := NewRegistry("claude", ClaudeCode(), Cursor())
	if err != nil {
		panic(err)
	}
	return r
}

// Registry is an immutable set of platforms keyed by id.
type Registry struct {
	order     []string
	platforms map[string]Platform
	def       string
}

// NewRegistry builds a registry from the given platforms. The default id
// must be one of them and every AgentsPath must live under its Directory.
func NewRegistry(defaultID string, platforms ...Platform) (*Registry, error) {
	r := &Registry{
		platforms: make(map[string]Platform, len(platforms)),
		def:       defaultID,
	}
	for _, p := range platforms {
		if p.ID == "" {
			return nil, fmt.Errorf("platform id is required")
		}
		if _, dup := r.platforms[p.ID]; dup {
			return nil, fmt.Errorf("duplicate platform %q", p.ID)
		}
		if !isDescendant(p.Directory, p.AgentsPath) {
			return nil, fmt.Errorf("platform %q: agents path %q is not inside %q",
				p.ID, p.AgentsPath, p.Directory)
		}
		r.order = append(r.order, p.ID)
		r.platforms[p.ID] = p
	}
	if _, ok := r.platforms[defaultID]; !ok {
		return nil, fmt.Errorf("default platform %q is not registered", defaultID)
	}
	return r, nil
}

// Lookup returns the platform with the given id.
func (r *Registry) Lookup(id string) (Platform, error) {
	p, ok := r.platforms[id]
	if !ok {
		return Platform{}, &UnknownPlatformError{ID: id, Supported: r.IDs()}
	}
	return p, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.platforms[id]
	return ok
}

// Default returns the id of the default platform.
func (r *Registry) Default() string { return r.def }

// All returns every platform in registration order.
func (r *Registry) All() []Platform {
	result := make([]Platform, len(r.order))
	for i, id := range r.order {
		result[i] = r.platforms[id]
	}
	return result
}

// IDs returns the registered ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// isDescendant reports whether child is dir itself or nested below it.
func isDescendant(dir, child string) bool {
	dir = path.Clean(dir)
	child = path.Clean(child)
	return child == dir || strings.HasPrefix(child, dir+"/")
}
