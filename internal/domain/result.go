package domain

import "time"

// Status is the outcome of running all workflows for one testcase
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// CaseResult represents the result of executing every workflow for a testcase
type CaseResult struct {
	Testcase string
	Status   Status
	Errors   []string      // One entry per failed workflow
	Duration time.Duration // Time taken by all workflows
}

// RunStats summarizes a runner invocation
type RunStats struct {
	Passed   int
	Failed   int
	Total    int
	Duration time.Duration
}
