package core

import "fmt"

// Scope selects the base directory agents are installed under.
type Scope string

const (
	ScopeGlobal Scope = "global" // user's home directory
	ScopeLocal  Scope = "local"  // current working directory
)

// Scopes lists the valid scopes.
var Scopes = []Scope{ScopeGlobal, ScopeLocal}

// ParseScope converts user input into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeGlobal, ScopeLocal:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("unknown scope %q; expected %q or %q", s, ScopeGlobal, ScopeLocal)
	}
}

// Label returns the title-case label used in output.
func (s Scope) Label() string {
	if s == ScopeGlobal {
		return "Global"
	}
	return "Local"
}
