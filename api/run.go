package api

import (
	"time"
)

// Status is the lifecycle status of a run or a single stage
type Status string

const (
	StatusUnknown   Status = ""
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
	StatusCanceled  Status = "canceled"
)

// IsFinal indicates whether a stage in this status is done, one way or another
func (s Status) IsFinal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusSkipped, StatusCanceled:
		return true
	}
	return false
}

// LogLine is a single line of output captured while a stage runs
type LogLine struct {
	LineNumber int       `json:"line"`
	Timestamp  time.Time `json:"timestamp"`
	StreamType string    `json:"streamType"`
	Text       string    `json:"text"`
}

// StageResult tracks the outcome of a single stage in a run
type StageResult struct {
	Stage     string        `json:"stage"`
	Status    Status        `json:"status"`
	Image     string        `json:"image,omitempty"`
	ImageSize int64         `json:"imageSize,omitempty"`
	ExitCode  int           `json:"exitCode"`
	Duration  time.Duration `json:"duration"`
	LogLines  []LogLine     `json:"logLines,omitempty"`
}

// TailLogLine is the message passed over the status bus while stages execute;
// it carries a log line, a status transition or image details for a stage
type TailLogLine struct {
	Stage     string
	Status    *Status
	LogLine   *LogLine
	Image     string
	ImageSize int64
	Duration  *time.Duration
	ExitCode  *int
}

// RunLog is the full log of a single pipeline run, shipped to the control server
type RunLog struct {
	RepoSource   string         `json:"repoSource"`
	RepoOwner    string         `json:"repoOwner"`
	RepoName     string         `json:"repoName"`
	RepoBranch   string         `json:"repoBranch"`
	RepoRevision string         `json:"repoRevision"`
	Stages       []*StageResult `json:"stages"`
}

// HasUnknownStatus returns true if any stage has no final status yet
func (rl *RunLog) HasUnknownStatus() bool {
	for _, s := range rl.Stages {
		if !s.Status.IsFinal() {
			return true
		}
	}

	return len(rl.Stages) == 0
}

// GetAggregatedStatus returns the status of the run as a whole given its stage results
func GetAggregatedStatus(stages []*StageResult) Status {

	aggregatedStatus := StatusSucceeded
	for _, s := range stages {
		switch s.Status {
		case StatusCanceled:
			return StatusCanceled
		case StatusFailed:
			aggregatedStatus = StatusFailed
		}
	}

	return aggregatedStatus
}

// HasSucceededStatus returns true only if no stage failed or was canceled
func HasSucceededStatus(stages []*StageResult) bool {
	return GetAggregatedStatus(stages) == StatusSucceeded
}
