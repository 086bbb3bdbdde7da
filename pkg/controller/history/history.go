package history

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Param struct {
	Limit int
}

func (c *Controller) List(ctx context.Context, param *Param) error {
	runs, err := c.store.ListRuns(ctx, param.Limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	for _, run := range runs {
		jobs := make([]string, 0, len(run.Jobs))
		for _, job := range run.Jobs {
			jobs = append(jobs, fmt.Sprintf("%s=%s", job.Name, colorStatus(job.Status)))
		}
		fmt.Fprintf(c.stdout, "%s %s %s %s %s\n",
			run.StartedAt.Format(time.RFC3339),
			run.Repository,
			run.Tag,
			colorStatus(run.Status),
			strings.Join(jobs, " "))
	}
	return nil
}
