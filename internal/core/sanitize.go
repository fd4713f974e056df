package core

import (
	"regexp"
	"strings"
)

const (
	reasonTraversal = "path separators or relative paths not allowed"
	reasonCharset   = "only letters, numbers, hyphens, underscores allowed"
)

var agentNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeAgentName checks that name is safe to use as a single path
// component and returns it unchanged. The traversal check runs first and
// independently of the character check.
//
// Every name that comes from outside the program must pass through here
// before it is joined into a path.
func SanitizeAgentName(name string) (string, error) {
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", &InvalidNameError{Name: name, Reason: reasonTraversal}
	}
	if !agentNameRegexp.MatchString(name) {
		return "", &InvalidNameError{Name: name, Reason: reasonCharset}
	}
	return name, nil
}

// NormalizeAgentName turns free-form input such as "my custom agent" into
// the conventional upper-case, hyphenated form "MY-CUSTOM-AGENT". The result
// still has to go through SanitizeAgentName.
func NormalizeAgentName(raw string) string {
	return whitespaceRun.ReplaceAllString(strings.ToUpper(strings.TrimSpace(raw)), "-")
}
