// Package initcmd implements the 'relact init' command.
// It generates a starter pipeline file so users can set up relact quickly.
package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# relact - release pipeline runner
# The pipeline runs only when the runtime repository matches.
repository: owner/name
# require_version: true
jobs:
  package:
    steps:
      - name: build
        run: python -m build
      - name: publish
        run: twine upload dist/*
  notify:
    needs: [package]
    env:
      IRC_CHANNEL: "#releases"
    steps:
      # RELACT_MESSAGE contains the tag and the release notes URL.
      - run: irk "$IRC_CHANNEL" "$RELACT_MESSAGE"
`
	filePermission os.FileMode = 0o644
)

// Init creates a pipeline file with a template if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a pipeline file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a pipeline file: %w", err)
	}
	return nil
}
