// Package run implements the core logic of executing a release pipeline.
// The controller reads the pipeline definition, checks the repository guard,
// derives the version tag from the release reference, orders jobs by their
// dependencies, and executes each job's steps through the shell. Jobs whose
// dependencies didn't succeed are skipped, never run. Run results are
// recorded in the local history store.
package run

import (
	"context"
	"io"

	"github.com/relact/relact/pkg/config"
	"github.com/relact/relact/pkg/github"
	"github.com/relact/relact/pkg/history"
	"github.com/spf13/afero"
)

type Controller struct {
	repositoriesService RepositoriesService
	executor            Executor
	store               HistoryStore
	fs                  afero.Fs
	param               *ParamRun
	cfgFinder           ConfigFinder
	cfgReader           ConfigReader
	logger              *Logger
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

// RepositoriesService resolves a published release by its tag.
type RepositoriesService interface {
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, *github.Response, error)
}

// Executor runs one step's command.
type Executor interface {
	Exec(ctx context.Context, param *ExecParam) error
}

type ExecParam struct {
	Command string
	Dir     string
	Env     []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// HistoryStore records finished runs. Recording is best-effort; a store
// failure never fails the pipeline.
type HistoryStore interface {
	RecordRun(ctx context.Context, run *history.Run) error
}

func New(repositoriesService RepositoriesService, executor Executor, store HistoryStore, fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamRun) *Controller {
	return &Controller{
		repositoriesService: repositoriesService,
		executor:            executor,
		store:               store,
		fs:                  fs,
		param:               param,
		cfgFinder:           cfgFinder,
		cfgReader:           cfgReader,
		logger:              NewLogger(param.Stderr),
	}
}
