package validate_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/relact/relact/pkg/config"
	"github.com/relact/relact/pkg/controller/validate"
	"github.com/relact/relact/pkg/log"
	"github.com/spf13/afero"
)

func TestController_Validate(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		exp     string
		isErr   bool
	}{
		{
			name: "valid",
			content: `repository: foo/bar
jobs:
  package:
    steps:
      - run: python -m build
  notify:
    needs: [package]
    steps:
      - run: irk "#foo" "$RELACT_MESSAGE"
`,
			exp: ".relact.yaml is valid (2 jobs)\n",
		},
		{
			name: "cycle",
			content: `repository: foo/bar
jobs:
  a:
    needs: [b]
    steps:
      - run: "true"
  b:
    needs: [a]
    steps:
      - run: "true"
`,
			isErr: true,
		},
		{
			name:    "missing repository",
			content: "jobs: {}\n",
			isErr:   true,
		},
	}
	logE := log.New("test")
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, ".relact.yaml", []byte(d.content), 0o644); err != nil {
				t.Fatal(err)
			}
			stdout := &bytes.Buffer{}
			ctrl := validate.New(fs, config.NewFinder(fs), config.NewReader(fs), stdout)
			err := ctrl.Validate(logE, "")
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(stdout.String(), d.exp) {
				t.Fatalf("wanted %q, got %q", d.exp, stdout.String())
			}
		})
	}
}
