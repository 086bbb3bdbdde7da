package di

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/relact/relact/pkg/config"
	"github.com/relact/relact/pkg/controller/run"
	"github.com/relact/relact/pkg/github"
	"github.com/relact/relact/pkg/history"
	"github.com/relact/relact/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// Run builds the run controller with real implementations and executes the
// pipeline. It reads the release event payload if one is available and fills
// the release metadata the controller needs.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, secrets *Secrets) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	log.SetLevel(flags.LogLevel, logE)
	fs := afero.NewOsFs()

	param := &run.ParamRun{
		ConfigFilePath: flags.Config,
		PWD:            flags.PWD,
		Repository:     flags.Repository,
		Ref:            flags.Ref,
		ServerURL:      flags.ServerURL,
		DryRun:         flags.DryRun,
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
	}
	if flags.EventPath != "" {
		ev := &Event{}
		if err := readEvent(fs, ev, flags.EventPath); err != nil {
			logerr.WithError(logE, err).Warn("read the release event payload")
		} else {
			param.ReleaseTag = ev.TagName()
			param.ReleaseURL = ev.ReleaseURL()
			if param.Repository == "" {
				param.Repository = ev.RepoFullName()
			}
		}
	}

	releases := github.NewRepositoriesService(github.New(ctx, secrets.GitHubToken))

	var store run.HistoryStore
	if !flags.DryRun && !flags.NoHistory {
		s, err := openStore(flags.DataDir)
		if err != nil {
			logerr.WithError(logE, err).Warn("open the history store")
		} else {
			defer s.Close() //nolint:errcheck
			store = s
		}
	}

	ctrl := run.New(releases, run.NewExecutor(), store, fs, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func openStore(dataDir string) (*history.Store, error) {
	p, err := history.DefaultPath(dataDir)
	if err != nil {
		return nil, err
	}
	return history.New(p)
}
