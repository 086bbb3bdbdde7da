package history

import (
	"context"
	"fmt"
	"os"

	"github.com/relact/relact/pkg/cli/flag"
	controller "github.com/relact/relact/pkg/controller/history"
	"github.com/relact/relact/pkg/history"
	"github.com/relact/relact/pkg/log"
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
		Name:   "history",
		Usage:  "List past pipeline runs",
		Action: r.action,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to list",
				Value: 20,
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "Directory where the run history is stored",
				Sources: cli.EnvVars("RELACT_DATA_DIR"),
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	log.SetLevel(r.gf.LogLevel, r.logE)
	p, err := history.DefaultPath(c.String("data-dir"))
	if err != nil {
		return fmt.Errorf("resolve the history database path: %w", err)
	}
	store, err := history.New(p)
	if err != nil {
		return fmt.Errorf("open the history store: %w", err)
	}
	defer store.Close() //nolint:errcheck
	ctrl := controller.New(store, os.Stdout)
	return ctrl.List(ctx, &controller.Param{ //nolint:wrapcheck
		Limit: c.Int("limit"),
	})
}
