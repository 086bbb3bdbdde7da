package validate

import (
	"context"
	"os"

	"github.com/relact/relact/pkg/cli/flag"
	"github.com/relact/relact/pkg/config"
	"github.com/relact/relact/pkg/controller/validate"
	"github.com/relact/relact/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE: logE,
		gf:   gf,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
	gf   *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate the pipeline file without running any job",
		Description: `Validate the pipeline file without running any job.

$ relact validate

You can also pass a pipeline file path.

e.g.

$ relact validate pipeline.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.gf.LogLevel, r.logE)
	fs := afero.NewOsFs()
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gf.Config
	}
	ctrl := validate.New(fs, config.NewFinder(fs), config.NewReader(fs), os.Stdout)
	return ctrl.Validate(r.logE, configFilePath) //nolint:wrapcheck
}
