package config_test

import (
	"strings"
	"testing"

	"github.com/relact/relact/pkg/config"
	"github.com/spf13/afero"
)

func TestConfig_Validate(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name  string
		cfg   *config.Config
		isErr bool
	}{
		{
			name: "valid",
			cfg: &config.Config{
				Repository: "foo/bar",
				Jobs: map[string]*config.Job{
					"package": {
						Steps: []*config.Step{
							{Run: "python -m build"},
						},
					},
					"notify": {
						Needs: []string{"package"},
						Steps: []*config.Step{
							{Run: "notify-send release"},
						},
					},
				},
			},
		},
		{
			name: "repository is required",
			cfg: &config.Config{
				Jobs: map[string]*config.Job{
					"package": {
						Steps: []*config.Step{
							{Run: "true"},
						},
					},
				},
			},
			isErr: true,
		},
		{
			name: "repository must be owner/name",
			cfg: &config.Config{
				Repository: "foo",
				Jobs: map[string]*config.Job{
					"package": {
						Steps: []*config.Step{
							{Run: "true"},
						},
					},
				},
			},
			isErr: true,
		},
		{
			name: "jobs are required",
			cfg: &config.Config{
				Repository: "foo/bar",
			},
			isErr: true,
		},
		{
			name: "steps are required",
			cfg: &config.Config{
				Repository: "foo/bar",
				Jobs: map[string]*config.Job{
					"package": {},
				},
			},
			isErr: true,
		},
		{
			name: "run is required",
			cfg: &config.Config{
				Repository: "foo/bar",
				Jobs: map[string]*config.Job{
					"package": {
						Steps: []*config.Step{
							{Name: "build"},
						},
					},
				},
			},
			isErr: true,
		},
		{
			name: "unknown need",
			cfg: &config.Config{
				Repository: "foo/bar",
				Jobs: map[string]*config.Job{
					"notify": {
						Needs: []string{"package"},
						Steps: []*config.Step{
							{Run: "true"},
						},
					},
				},
			},
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			err := d.cfg.Validate()
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestReader_Read(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		isErr   bool
		repo    string
	}{
		{
			name: "valid",
			content: `repository: foo/bar
jobs:
  package:
    steps:
      - run: python -m build
      - run: twine upload dist/*
  notify:
    needs: [package]
    env:
      IRC_CHANNEL: "#foo"
    steps:
      - run: irk "$IRC_CHANNEL" "$RELACT_MESSAGE"
`,
			repo: "foo/bar",
		},
		{
			name:    "broken yaml",
			content: `repository: [`,
			isErr:   true,
		},
		{
			name: "invalid pipeline",
			content: `repository: foo/bar
jobs: {}
`,
			isErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, ".relact.yaml", []byte(d.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg := &config.Config{}
			err := config.NewReader(fs).Read(cfg, ".relact.yaml")
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Repository != d.repo {
				t.Fatalf("repository: wanted %s, got %s", d.repo, cfg.Repository)
			}
		})
	}
}

func TestFinder_Find(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		arg   string
		paths []string
		exp   string
		isErr bool
	}{
		{
			name:  "no pipeline file",
			paths: []string{},
			isErr: true,
		},
		{
			name: "explicit path",
			arg:  "pipeline.yaml",
			exp:  "pipeline.yaml",
		},
		{
			name:  "primary",
			paths: []string{".relact.yaml"},
			exp:   ".relact.yaml",
		},
		{
			name:  "fallback",
			paths: []string{".github/relact.yaml"},
			exp:   ".github/relact.yaml",
		},
		{
			name:  "both primary and others",
			paths: []string{".relact.yaml", ".github/relact.yaml"},
			exp:   ".relact.yaml",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, path := range d.paths {
				if err := afero.WriteFile(fs, path, []byte(""), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := config.NewFinder(fs).Find(d.arg)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				if !strings.Contains(err.Error(), "relact init") {
					t.Fatalf("error must mention relact init: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, got)
			}
		})
	}
}
