package validate

import (
	"fmt"

	"github.com/relact/relact/pkg/config"
	"github.com/relact/relact/pkg/controller/run"
	"github.com/sirupsen/logrus"
)

func (c *Controller) Validate(logE *logrus.Entry, configFilePath string) error {
	p, err := c.cfgFinder.Find(configFilePath)
	if err != nil {
		return fmt.Errorf("find a pipeline file: %w", err)
	}
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, p); err != nil {
		return fmt.Errorf("read a pipeline file: %w", err)
	}
	if _, err := run.SortJobs(cfg.Jobs); err != nil {
		return err
	}
	logE.WithField("pipeline_file", p).Debug("the pipeline file is valid")
	fmt.Fprintf(c.stdout, "%s is valid (%d jobs)\n", p, len(cfg.Jobs))
	return nil
}
