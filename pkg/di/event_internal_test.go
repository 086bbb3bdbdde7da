package di

import (
	"testing"

	"github.com/spf13/afero"
)

func Test_readEvent(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		expTag  string
		expURL  string
		expRepo string
		isErr   bool
		noFile  bool
	}{
		{
			name: "release published",
			content: `{
  "action": "published",
  "release": {
    "tag_name": "v1.2.3",
    "html_url": "https://github.com/foo/bar/releases/tag/v1.2.3",
    "name": "v1.2.3"
  },
  "repository": {
    "full_name": "foo/bar"
  }
}`,
			expTag:  "v1.2.3",
			expURL:  "https://github.com/foo/bar/releases/tag/v1.2.3",
			expRepo: "foo/bar",
		},
		{
			name:    "empty payload",
			content: `{}`,
		},
		{
			name:    "broken payload",
			content: `{`,
			isErr:   true,
		},
		{
			name:   "missing file",
			noFile: true,
			isErr:  true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if !d.noFile {
				if err := afero.WriteFile(fs, "event.json", []byte(d.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			ev := &Event{}
			err := readEvent(fs, ev, "event.json")
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if ev.TagName() != d.expTag {
				t.Errorf("TagName: wanted %q, got %q", d.expTag, ev.TagName())
			}
			if ev.ReleaseURL() != d.expURL {
				t.Errorf("ReleaseURL: wanted %q, got %q", d.expURL, ev.ReleaseURL())
			}
			if ev.RepoFullName() != d.expRepo {
				t.Errorf("RepoFullName: wanted %q, got %q", d.expRepo, ev.RepoFullName())
			}
		})
	}
}
