package di_test

import (
	"testing"

	"github.com/relact/relact/pkg/di"
)

func TestSecrets_SetFromEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		env  map[string]string
		exp  string
	}{
		{
			name: "empty",
			env:  map[string]string{},
			exp:  "",
		},
		{
			name: "github token",
			env:  map[string]string{"GITHUB_TOKEN": "gh_token"},
			exp:  "gh_token",
		},
		{
			name: "relact token wins",
			env: map[string]string{
				"GITHUB_TOKEN":        "gh_token",
				"RELACT_GITHUB_TOKEN": "relact_token",
			},
			exp: "relact_token",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			s := &di.Secrets{}
			s.SetFromEnv(func(key string) string {
				return d.env[key]
			})
			if s.GitHubToken != d.exp {
				t.Errorf("GitHubToken: wanted %q, got %q", d.exp, s.GitHubToken)
			}
		})
	}
}

func TestSetEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name               string
		flags              *di.Flags
		env                map[string]string
		expRepository      string
		expRef             string
		expIsGitHubActions bool
	}{
		{
			name:  "empty",
			flags: &di.Flags{},
		},
		{
			name:  "all values from env",
			flags: &di.Flags{},
			env: map[string]string{
				"GITHUB_REPOSITORY": "foo/bar",
				"GITHUB_REF":        "refs/tags/v1.2.3",
				"GITHUB_ACTIONS":    "true",
			},
			expRepository:      "foo/bar",
			expRef:             "refs/tags/v1.2.3",
			expIsGitHubActions: true,
		},
		{
			name: "flags win over env",
			flags: &di.Flags{
				Repository: "other/repo",
				Ref:        "refs/tags/v9.9.9",
			},
			env: map[string]string{
				"GITHUB_REPOSITORY": "foo/bar",
				"GITHUB_REF":        "refs/tags/v1.2.3",
			},
			expRepository: "other/repo",
			expRef:        "refs/tags/v9.9.9",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			di.SetEnv(d.flags, func(key string) string {
				return d.env[key]
			})
			if d.flags.Repository != d.expRepository {
				t.Errorf("Repository: wanted %q, got %q", d.expRepository, d.flags.Repository)
			}
			if d.flags.Ref != d.expRef {
				t.Errorf("Ref: wanted %q, got %q", d.expRef, d.flags.Ref)
			}
			if d.flags.IsGitHubActions != d.expIsGitHubActions {
				t.Errorf("IsGitHubActions: wanted %v, got %v", d.expIsGitHubActions, d.flags.IsGitHubActions)
			}
		})
	}
}
