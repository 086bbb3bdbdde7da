// Package history implements the 'relact history' command.
// It lists past pipeline runs recorded in the local history store.
package history

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/relact/relact/pkg/history"
)

type Controller struct {
	store  Store
	stdout io.Writer
}

type Store interface {
	ListRuns(ctx context.Context, limit int) ([]*history.Run, error)
}

func New(store Store, stdout io.Writer) *Controller {
	return &Controller{
		store:  store,
		stdout: stdout,
	}
}

type colorFunc func(a ...interface{}) string

var statusColors = map[string]colorFunc{
	"success": color.New(color.FgGreen).SprintFunc(),
	"failure": color.New(color.FgRed).SprintFunc(),
	"skipped": color.New(color.FgYellow).SprintFunc(),
}

func colorStatus(status string) string {
	if f, ok := statusColors[status]; ok {
		return f(status)
	}
	return status
}
