package di

// Secrets holds sensitive tokens. They are read from the environment, never
// from the pipeline file.
type Secrets struct {
	GitHubToken string
}

// SetFromEnv sets secrets from environment variables.
func (s *Secrets) SetFromEnv(getEnv func(string) string) {
	s.GitHubToken = getEnv("RELACT_GITHUB_TOKEN")
	if s.GitHubToken == "" {
		s.GitHubToken = getEnv("GITHUB_TOKEN")
	}
}

// SetEnv fills flags from the GitHub Actions environment. Values already
// set via command line flags win.
func SetEnv(flags *Flags, getEnv func(string) string) {
	if flags.Repository == "" {
		flags.Repository = getEnv("GITHUB_REPOSITORY")
	}
	if flags.Ref == "" {
		flags.Ref = getEnv("GITHUB_REF")
	}
	if flags.ServerURL == "" {
		flags.ServerURL = getEnv("GITHUB_SERVER_URL")
	}
	if flags.EventPath == "" {
		flags.EventPath = getEnv("GITHUB_EVENT_PATH")
	}
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == "true"
}
