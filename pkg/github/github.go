// Package github provides the GitHub API client used to resolve release
// metadata. It handles token-based authentication via OAuth2 and exposes
// type aliases for the go-github types the rest of the codebase needs.
package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

type (
	Client            = github.Client
	RepositoryRelease = github.RepositoryRelease
	Response          = github.Response
)

// New creates a GitHub API client. If token is empty the client is
// unauthenticated, which is enough for public repositories.
func New(ctx context.Context, token string) *Client {
	return github.NewClient(getHTTPClientForGitHub(ctx, token))
}

func getHTTPClientForGitHub(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
