// Package cli assembles the relact command line interface.
package cli

import (
	"context"

	"github.com/relact/relact/pkg/cli/flag"
	"github.com/relact/relact/pkg/cli/history"
	"github.com/relact/relact/pkg/cli/initcmd"
	"github.com/relact/relact/pkg/cli/run"
	"github.com/relact/relact/pkg/cli/validate"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	gf := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "relact",
		Usage:                 "Run release pipelines. https://github.com/relact/relact",
		Version:               r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:                 gf.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			initcmd.New(r.LogE, gf),
			run.New(r.LogE, gf),
			validate.New(r.LogE, gf),
			history.New(r.LogE, gf),
			r.newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
