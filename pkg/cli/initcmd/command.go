package initcmd

import (
	"context"

	"github.com/relact/relact/pkg/cli/flag"
	"github.com/relact/relact/pkg/controller/initcmd"
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
		Name:  "init",
		Usage: "Create .relact.yaml if it doesn't exist",
		Description: `Create .relact.yaml if it doesn't exist

$ relact init

You can also pass a pipeline file path.

e.g.

$ relact init .github/relact.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.gf.LogLevel, r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gf.Config
	}
	if configFilePath == "" {
		configFilePath = ".relact.yaml"
	}
	return initcmd.New(afero.NewOsFs()).Init(configFilePath) //nolint:wrapcheck
}
