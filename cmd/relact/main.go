package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/relact/relact/pkg/cli"
	"github.com/relact/relact/pkg/controller/run"
	"github.com/relact/relact/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		if errors.Is(err, run.ErrPipelineFailed) {
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("relact failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runner := &cli.Runner{
		LDFlags: &cli.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
		LogE: logE,
	}
	return runner.Run(ctx, os.Args...) //nolint:wrapcheck
}
