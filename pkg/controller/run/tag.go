package run

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
)

// TagFromRef derives the version tag from a release reference.
// The tag is the substring after the final slash, e.g.
// "refs/tags/v1.2.3" yields "v1.2.3". A reference without a slash
// yields itself.
func TagFromRef(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// validateTag checks that the tag parses as a semantic version.
// It is only called when the pipeline sets require_version.
func validateTag(tag string) error {
	if _, err := version.NewVersion(tag); err != nil {
		return fmt.Errorf("parse the tag as a version: %w", err)
	}
	return nil
}
