package di

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
)

// Event represents a GitHub Actions release event payload.
type Event struct {
	Release    *Release    `json:"release"`
	Repository *Repository `json:"repository"`
}

// TagName extracts the release tag from the event.
func (e *Event) TagName() string {
	if e != nil && e.Release != nil {
		return e.Release.TagName
	}
	return ""
}

// ReleaseURL extracts the release notes page URL from the event.
func (e *Event) ReleaseURL() string {
	if e != nil && e.Release != nil {
		return e.Release.HTMLURL
	}
	return ""
}

// RepoFullName extracts the repository identifier in owner/name form.
func (e *Event) RepoFullName() string {
	if e != nil && e.Repository != nil {
		return e.Repository.FullName
	}
	return ""
}

// Release represents the published release in the event payload.
type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
	Name    string `json:"name"`
}

// Repository represents the repository in the event payload.
type Repository struct {
	FullName string `json:"full_name"`
}

func readEvent(fs afero.Fs, ev *Event, eventPath string) error {
	event, err := fs.Open(eventPath)
	if err != nil {
		return fmt.Errorf("read GITHUB_EVENT_PATH: %w", err)
	}
	defer event.Close()
	if err := json.NewDecoder(event).Decode(&ev); err != nil {
		return fmt.Errorf("unmarshal GITHUB_EVENT_PATH: %w", err)
	}
	return nil
}
