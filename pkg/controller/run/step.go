package run

import (
	"context"
	"fmt"
	"os/exec"
)

// CommandExecutor runs step commands through the shell.
type CommandExecutor struct{}

func NewExecutor() *CommandExecutor {
	return &CommandExecutor{}
}

func (e *CommandExecutor) Exec(ctx context.Context, param *ExecParam) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", param.Command)
	cmd.Dir = param.Dir
	cmd.Env = param.Env
	cmd.Stdout = param.Stdout
	cmd.Stderr = param.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run a command: %w", err)
	}
	return nil
}
