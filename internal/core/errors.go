package core

import (
	"errors"
	"fmt"
)

// Sentinel errors matched via errors.Is against the typed errors below.
var (
	ErrInvalidName      = errors.New("invalid agent name")
	ErrTemplateNotFound = errors.New("agent template not found")
)

// InvalidNameError is returned by SanitizeAgentName when a name cannot be used
// as a path component.
type InvalidNameError struct {
	Name   string
	Reason string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid agent name %q: %s", e.Name, e.Reason)
}

// Is reports whether target is ErrInvalidName.
func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// TemplateNotFoundError is returned when the bundled template for an agent is
// missing.
type TemplateNotFoundError struct {
	Name string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("agent template not found: %s.md", e.Name)
}

// Is reports whether target is ErrTemplateNotFound.
func (e *TemplateNotFoundError) Is(target error) bool { return target == ErrTemplateNotFound }
