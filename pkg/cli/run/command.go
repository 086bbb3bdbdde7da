package run

import (
	"context"
	"fmt"
	"os"

	"github.com/relact/relact/pkg/cli/flag"
	"github.com/relact/relact/pkg/di"
	"github.com/sirupsen/logrus"
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
		Name:  "run",
		Usage: "Run the release pipeline",
		Description: `Run the release pipeline defined in .relact.yaml.

$ relact run

On GitHub Actions the release context is taken from the environment
(GITHUB_REPOSITORY, GITHUB_REF, GITHUB_SERVER_URL, GITHUB_EVENT_PATH).
Outside GitHub Actions, pass it via flags.

e.g.

$ relact run --repository foo/bar --ref refs/tags/v1.2.3
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the execution plan without running any step",
			},
			&cli.StringFlag{
				Name:  "repository",
				Usage: "Repository identifier in owner/name form",
			},
			&cli.StringFlag{
				Name:  "ref",
				Usage: "Release reference, e.g. refs/tags/v1.2.3",
			},
			&cli.StringFlag{
				Name:  "server-url",
				Usage: "Server URL used to construct the release notes URL",
			},
			&cli.StringFlag{
				Name:  "event-path",
				Usage: "Path to the release event payload",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory where the run history is stored",
				Sources: cli.EnvVars("RELACT_DATA_DIR"),
			},
			&cli.BoolFlag{
				Name:  "no-history",
				Usage: "Don't record the run in the history store",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	flags := &di.Flags{
		GlobalFlags: r.gf,
		DryRun:      c.Bool("dry-run"),
		Repository:  c.String("repository"),
		Ref:         c.String("ref"),
		ServerURL:   c.String("server-url"),
		EventPath:   c.String("event-path"),
		DataDir:     c.String("data-dir"),
		NoHistory:   c.Bool("no-history"),
		PWD:         pwd,
	}
	di.SetEnv(flags, os.Getenv)
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Run(ctx, r.logE, flags, secrets) //nolint:wrapcheck
}
