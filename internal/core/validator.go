package core

import (
	"fmt"
	"os"
	"strings"
)

// Validation messages.
const (
	MsgFileMissing     = "File does not exist"
	MsgMissingMetadata = "Missing agent metadata (name, description, model, color)"
)

// RequiredSections are the headings every agent file must carry, in the
// order they are checked.
var RequiredSections = []string{"Purpose", "Duty", "Instructions"}

// ValidationResult is the outcome of checking one agent file.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateAgentFile checks the agent file at path. A missing file is a
// validation failure, not an error; read failures are returned as errors.
func ValidateAgentFile(path string) (ValidationResult, error) {
	ok, err := fileExists(path)
	if err != nil {
		return ValidationResult{}, err
	}
	if !ok {
		return ValidationResult{Valid: false, Errors: []string{MsgFileMissing}}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ValidationResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return ValidateAgentContent(string(data)), nil
}

// ValidateAgentContent applies the structural checks to content. The checks
// are plain substring matches: a heading quoted inside a code block counts.
func ValidateAgentContent(content string) ValidationResult {
	errs := []string{}

	if !strings.HasPrefix(content, "---") && !strings.Contains(content, "name:") {
		errs = append(errs, MsgMissingMetadata)
	}

	for _, section := range RequiredSections {
		if !strings.Contains(content, "## "+section) && !strings.Contains(content, "### "+section) {
			errs = append(errs, "Missing required section: "+section)
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
