// Package templates bundles the agent templates shipped with the binary.
//
// Layout of the embedded filesystem:
//
//	agents/<NAME>.md            one template per catalog agent
//	AGENTS_PROTOCOL.md          companion document copied next to agents
//	custom-agent-template.md    placeholder template used by "create"
//	catalog.yaml                descriptive catalog of the bundled agents
package templates

import (
	"embed"
	"io/fs"
)

//go:embed catalog.yaml AGENTS_PROTOCOL.md custom-agent-template.md agents/*.md
var content embed.FS

// FS returns the bundled templates.
func FS() fs.FS { return content }
