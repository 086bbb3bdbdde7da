package run

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

// Logger prints human readable job and step progress to stderr.
type Logger struct {
	stderr io.Writer
	red    colorFunc
	green  colorFunc
	yellow colorFunc
}

func NewLogger(stderr io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		stderr: stderr,
	}
}

func (l *Logger) Step(job, step string) {
	fmt.Fprintf(l.stderr, "[%s] %s\n", job, step)
}

func (l *Logger) JobResult(job string, status Status) {
	s := string(status)
	switch status {
	case StatusSuccess:
		s = l.green(s)
	case StatusFailure:
		s = l.red(s)
	case StatusSkipped:
		s = l.yellow(s)
	}
	fmt.Fprintf(l.stderr, "[%s] %s\n", job, s)
}
