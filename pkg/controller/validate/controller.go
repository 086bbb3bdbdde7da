// Package validate implements the 'relact validate' command.
// It loads the pipeline file and runs the static checks without executing
// any job: YAML shape, repository form, step commands, and the job
// dependency graph.
package validate

import (
	"io"

	"github.com/relact/relact/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs        afero.Fs
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	stdout    io.Writer
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, stdout io.Writer) *Controller {
	return &Controller{
		fs:        fs,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		stdout:    stdout,
	}
}
