// Package config defines the release pipeline definition and its loader.
// A pipeline file declares the repository the pipeline belongs to and a set
// of jobs. Each job runs a sequence of shell steps and may depend on other
// jobs via needs. The package provides a Finder that locates the pipeline
// file in conventional paths and a Reader that decodes and validates it.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Repository     string            `json:"repository" jsonschema:"description=Repository the pipeline belongs to in owner/name form. Jobs run only if the runtime repository matches"`
	RequireVersion bool              `json:"require_version,omitempty" yaml:"require_version" jsonschema:"description=If true the derived tag must parse as a semantic version"`
	Env            map[string]string `json:"env,omitempty" jsonschema:"description=Environment variables passed to every step"`
	Jobs           map[string]*Job   `json:"jobs" jsonschema:"description=Jobs keyed by name"`
}

type Job struct {
	Needs []string          `json:"needs,omitempty" jsonschema:"description=Jobs that must succeed before this job runs"`
	Env   map[string]string `json:"env,omitempty"`
	Steps []*Step           `json:"steps"`
}

type Step struct {
	Name string            `json:"name,omitempty"`
	Run  string            `json:"run" jsonschema:"description=Shell command to execute"`
	Env  map[string]string `json:"env,omitempty"`
}

var repositoryPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

func (c *Config) Validate() error {
	if c.Repository == "" {
		return errors.New("repository is required")
	}
	if !repositoryPattern.MatchString(c.Repository) {
		return fmt.Errorf("repository must be in owner/name form: %s", c.Repository)
	}
	if len(c.Jobs) == 0 {
		return errors.New("at least one job is required")
	}
	for name, job := range c.Jobs {
		if job == nil {
			return fmt.Errorf("job %s is empty", name)
		}
		if err := job.validate(c.Jobs); err != nil {
			return fmt.Errorf("job %s is invalid: %w", name, err)
		}
	}
	return nil
}

func (j *Job) validate(jobs map[string]*Job) error {
	for _, need := range j.Needs {
		if _, ok := jobs[need]; !ok {
			return fmt.Errorf("needs refers to an unknown job: %s", need)
		}
	}
	if len(j.Steps) == 0 {
		return errors.New("at least one step is required")
	}
	for i, step := range j.Steps {
		if step == nil || step.Run == "" {
			return fmt.Errorf("steps[%d]: run is required", i)
		}
	}
	return nil
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".relact.yaml", ".github/relact.yaml", ".relact.yml", ".github/relact.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	if p == "" {
		return "", errors.New("pipeline file isn't found. Run `relact init` to create one")
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a pipeline file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a pipeline file as YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate a pipeline file: %w", err)
	}
	return nil
}
