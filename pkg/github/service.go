package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v74/github"
)

// RepositoriesService defines the GitHub Repositories API operations relact uses.
type RepositoriesService interface {
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*RepositoryRelease, *Response, error)
}

type getReleaseByTagResult struct {
	release *RepositoryRelease
	resp    *Response
	err     error
}

// RepositoriesServiceImpl wraps the GitHub API and caches responses so a
// release is fetched at most once per run.
type RepositoriesServiceImpl struct {
	RepositoriesService RepositoriesService
	releases            map[string]*getReleaseByTagResult
}

func NewRepositoriesService(client *Client) *RepositoriesServiceImpl {
	return &RepositoriesServiceImpl{
		RepositoriesService: client.Repositories,
		releases:            map[string]*getReleaseByTagResult{},
	}
}

func (r *RepositoriesServiceImpl) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*RepositoryRelease, *Response, error) {
	key := fmt.Sprintf("%s/%s/%s", owner, repo, tag)
	if result, ok := r.releases[key]; ok {
		return result.release, result.resp, result.err
	}
	release, resp, err := r.RepositoriesService.GetReleaseByTag(ctx, owner, repo, tag)
	r.releases[key] = &getReleaseByTagResult{
		release: release,
		resp:    resp,
		err:     err,
	}
	return release, resp, err
}

// Ptr returns a pointer to the provided value.
func Ptr[T any](v T) *T {
	return github.Ptr(v)
}
