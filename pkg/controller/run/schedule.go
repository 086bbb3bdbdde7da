package run

import (
	"fmt"
	"sort"

	"github.com/relact/relact/pkg/config"
)

// Status is the result of one job.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusSkipped Status = "skipped"
)

// SortJobs returns job names in execution order. Dependencies come before
// dependents, and jobs that are ready at the same time are ordered
// lexicographically so the order is deterministic. An error is returned if
// the dependency graph has a cycle.
func SortJobs(jobs map[string]*config.Job) ([]string, error) {
	remaining := map[string]int{}
	dependents := map[string][]string{}
	for name, job := range jobs {
		remaining[name] = len(job.Needs)
		for _, need := range job.Needs {
			dependents[need] = append(dependents[need], name)
		}
	}
	ready := []string{}
	for name, n := range remaining {
		if n == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)
	order := make([]string, 0, len(jobs))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		released := []string{}
		for _, dependent := range dependents[name] {
			remaining[dependent]--
			if remaining[dependent] == 0 {
				released = append(released, dependent)
			}
		}
		sort.Strings(released)
		ready = mergeSorted(ready, released)
	}
	if len(order) != len(jobs) {
		cyclic := []string{}
		for name, n := range remaining {
			if n > 0 {
				cyclic = append(cyclic, name)
			}
		}
		sort.Strings(cyclic)
		return nil, fmt.Errorf("the job dependency graph has a cycle: %v", cyclic)
	}
	return order, nil
}

func mergeSorted(a, b []string) []string {
	merged := make([]string, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	sort.Strings(merged)
	return merged
}

// needsSatisfied reports whether every dependency of the job succeeded.
func needsSatisfied(job *config.Job, statuses map[string]Status) bool {
	for _, need := range job.Needs {
		if statuses[need] != StatusSuccess {
			return false
		}
	}
	return true
}
