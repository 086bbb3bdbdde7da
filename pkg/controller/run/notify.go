package run

import "fmt"

const defaultServerURL = "https://github.com"

// BuildReleaseURL constructs the release notes page URL.
func BuildReleaseURL(serverURL, repository, tag string) string {
	if serverURL == "" {
		serverURL = defaultServerURL
	}
	return fmt.Sprintf("%s/%s/releases/tag/%s", serverURL, repository, tag)
}

// DefaultMessage builds the notification message passed to notifier steps
// via RELACT_MESSAGE.
func DefaultMessage(repository, tag, releaseURL string) string {
	return fmt.Sprintf("%s %s has been released: %s", repository, tag, releaseURL)
}
