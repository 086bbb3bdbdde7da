package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/relact/relact/pkg/config"
	"github.com/relact/relact/pkg/history"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type ParamRun struct {
	ConfigFilePath string
	PWD            string
	Repository     string
	Ref            string
	ServerURL      string
	ReleaseTag     string
	ReleaseURL     string
	DryRun         bool
	Stdout         io.Writer
	Stderr         io.Writer
}

// ErrPipelineFailed is returned when any job fails. The caller exits with
// a non-zero status without logging a stack of wrapped errors.
var ErrPipelineFailed = errors.New("the pipeline failed")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	cfg, err := c.readConfig()
	if err != nil {
		return err
	}
	if c.param.Repository != cfg.Repository {
		logE.WithFields(logrus.Fields{
			"expected_repository": cfg.Repository,
			"repository":          c.param.Repository,
		}).Warn("skip the pipeline because the repository doesn't match")
		return nil
	}
	tag := c.param.ReleaseTag
	if c.param.Ref != "" {
		tag = TagFromRef(c.param.Ref)
	}
	if tag == "" {
		return errors.New("a release reference is required. Set --ref or GITHUB_REF")
	}
	if cfg.RequireVersion {
		if err := validateTag(tag); err != nil {
			return logerr.WithFields(err, logrus.Fields{ //nolint:wrapcheck
				"tag": tag,
			})
		}
	}
	order, err := SortJobs(cfg.Jobs)
	if err != nil {
		return err
	}
	if c.param.DryRun {
		c.outputPlan(cfg, order)
		return nil
	}
	releaseURL := c.resolveReleaseURL(ctx, logE, cfg, tag)
	run, err := c.runJobs(ctx, logE, cfg, order, tag, releaseURL)
	if err != nil {
		return err
	}
	c.recordRun(ctx, logE, run)
	if run.Status == string(StatusFailure) {
		return ErrPipelineFailed
	}
	return nil
}

func (c *Controller) readConfig() (*config.Config, error) {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a pipeline file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return nil, fmt.Errorf("read a pipeline file: %w", err)
	}
	return cfg, nil
}

func (c *Controller) outputPlan(cfg *config.Config, order []string) {
	for _, name := range order {
		job := cfg.Jobs[name]
		if len(job.Needs) == 0 {
			fmt.Fprintln(c.param.Stdout, name)
		} else {
			fmt.Fprintf(c.param.Stdout, "%s (needs: %s)\n", name, strings.Join(job.Needs, ", "))
		}
		for _, step := range job.Steps {
			fmt.Fprintf(c.param.Stdout, "  %s\n", stepName(step))
		}
	}
}

// resolveReleaseURL returns the release notes page URL for the notification
// message. The URL from the event payload wins. Otherwise the release is
// looked up via the GitHub API, and if that fails the URL is constructed
// from the server URL, the repository, and the tag.
func (c *Controller) resolveReleaseURL(ctx context.Context, logE *logrus.Entry, cfg *config.Config, tag string) string {
	if c.param.ReleaseURL != "" {
		return c.param.ReleaseURL
	}
	constructed := BuildReleaseURL(c.param.ServerURL, cfg.Repository, tag)
	if c.repositoriesService == nil {
		return constructed
	}
	owner, repo, ok := strings.Cut(cfg.Repository, "/")
	if !ok {
		return constructed
	}
	release, _, err := c.repositoriesService.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		logerr.WithError(logE, err).WithField("tag", tag).Warn("get the release by tag")
		return constructed
	}
	if u := release.GetHTMLURL(); u != "" {
		return u
	}
	return constructed
}

func (c *Controller) runJobs(ctx context.Context, logE *logrus.Entry, cfg *config.Config, order []string, tag, releaseURL string) (*history.Run, error) {
	envFile, err := afero.TempFile(c.fs, "", "relact-env-")
	if err != nil {
		return nil, fmt.Errorf("create a run scoped environment file: %w", err)
	}
	envFilePath := envFile.Name()
	envFile.Close()
	defer c.fs.Remove(envFilePath) //nolint:errcheck

	serverURL := c.param.ServerURL
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	derived := []string{
		"RELACT_TAG=" + tag,
		"RELACT_REPOSITORY=" + cfg.Repository,
		"RELACT_SERVER_URL=" + serverURL,
		"RELACT_RELEASE_URL=" + releaseURL,
		"RELACT_MESSAGE=" + DefaultMessage(cfg.Repository, tag, releaseURL),
		"RELACT_ENV=" + envFilePath,
	}

	run := &history.Run{
		Repository: cfg.Repository,
		Tag:        tag,
		Ref:        c.param.Ref,
		Status:     string(StatusSuccess),
		StartedAt:  time.Now(),
	}
	statuses := map[string]Status{}
	runEnv := map[string]string{}
	for _, name := range order {
		job := cfg.Jobs[name]
		logE := logE.WithField("job", name)
		jobStartedAt := time.Now()
		status := StatusSkipped
		if needsSatisfied(job, statuses) {
			status = c.runJob(ctx, logE, cfg, name, job, derived, envFilePath, runEnv)
		}
		statuses[name] = status
		if status == StatusFailure {
			run.Status = string(StatusFailure)
		}
		c.logger.JobResult(name, status)
		run.Jobs = append(run.Jobs, &history.JobRecord{
			Name:     name,
			Status:   string(status),
			Duration: time.Since(jobStartedAt),
		})
	}
	run.FinishedAt = time.Now()
	return run, nil
}

func (c *Controller) runJob(ctx context.Context, logE *logrus.Entry, cfg *config.Config, name string, job *config.Job, derived []string, envFilePath string, runEnv map[string]string) Status {
	for _, step := range job.Steps {
		c.logger.Step(name, stepName(step))
		env := os.Environ()
		env = appendEnvMap(env, cfg.Env)
		env = appendEnvMap(env, job.Env)
		env = appendEnvMap(env, step.Env)
		env = appendEnvMap(env, runEnv)
		env = append(env, derived...)
		if err := c.executor.Exec(ctx, &ExecParam{
			Command: step.Run,
			Dir:     c.param.PWD,
			Env:     env,
			Stdout:  c.param.Stdout,
			Stderr:  c.param.Stderr,
		}); err != nil {
			logerr.WithError(logE, err).WithField("step", stepName(step)).Error("run a step")
			return StatusFailure
		}
		if err := c.mergeEnvFile(envFilePath, runEnv); err != nil {
			logerr.WithError(logE, err).WithField("step", stepName(step)).Error("read the run scoped environment file")
			return StatusFailure
		}
	}
	return StatusSuccess
}

// mergeEnvFile reads the run scoped environment file and merges the
// variables steps appended. Later assignments win.
func (c *Controller) mergeEnvFile(envFilePath string, runEnv map[string]string) error {
	content, err := afero.ReadFile(c.fs, envFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read an environment file: %w", err)
	}
	env, err := parseEnvFile(string(content))
	if err != nil {
		return err
	}
	for k, v := range env {
		runEnv[k] = v
	}
	return nil
}

func (c *Controller) recordRun(ctx context.Context, logE *logrus.Entry, run *history.Run) {
	if c.store == nil {
		return
	}
	if err := c.store.RecordRun(ctx, run); err != nil {
		logerr.WithError(logE, err).Warn("record the run in the history store")
	}
}

func stepName(step *config.Step) string {
	if step.Name != "" {
		return step.Name
	}
	return step.Run
}

func appendEnvMap(env []string, m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+m[k])
	}
	return env
}
