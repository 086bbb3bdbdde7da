// Package di wires the dependencies of the relact CLI commands.
// It gathers flags, environment values, and the release event payload, and
// builds the controllers with real implementations.
package di

import (
	"github.com/relact/relact/pkg/cli/flag"
)

// Flags holds all command-line flags for the run command.
type Flags struct {
	*flag.GlobalFlags

	DryRun bool

	Repository string
	Ref        string
	ServerURL  string
	EventPath  string
	DataDir    string
	NoHistory  bool

	IsGitHubActions bool

	PWD string
}
