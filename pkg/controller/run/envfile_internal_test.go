package run

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Test_parseEnvFile(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		content string
		exp     map[string]string
		isErr   bool
	}{
		{
			name:    "empty",
			content: "",
			exp:     map[string]string{},
		},
		{
			name:    "single variable",
			content: "version=v1.2.3\n",
			exp:     map[string]string{"version": "v1.2.3"},
		},
		{
			name: "blank lines and comments are ignored",
			content: `
# release metadata
version=v1.2.3

channel=#releases
`,
			exp: map[string]string{
				"version": "v1.2.3",
				"channel": "#releases",
			},
		},
		{
			name:    "last assignment wins",
			content: "version=v1.0.0\nversion=v1.2.3\n",
			exp:     map[string]string{"version": "v1.2.3"},
		},
		{
			name:    "value may contain equals signs",
			content: "query=a=b=c\n",
			exp:     map[string]string{"query": "a=b=c"},
		},
		{
			name: "heredoc",
			content: `notes<<EOF
line1
line2
EOF
version=v1.2.3
`,
			exp: map[string]string{
				"notes":   "line1\nline2",
				"version": "v1.2.3",
			},
		},
		{
			name:    "missing heredoc delimiter",
			content: "notes<<EOF\nline1\n",
			isErr:   true,
		},
		{
			name:    "malformed line",
			content: "version\n",
			isErr:   true,
		},
		{
			name:    "empty key",
			content: "=v1.2.3\n",
			isErr:   true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			env, err := parseEnvFile(d.content)
			if d.isErr {
				if err == nil {
					t.Fatal("error must be returned")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, env); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}
