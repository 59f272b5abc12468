// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

import "fmt"

// Status is the result of processing one target file.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome records what happened to one target file.
type Outcome struct {
	Path   string
	Status Status
	// Reason is set for skipped and failed outcomes.
	Reason string
}

// String formats the outcome as a one-line status message.
func (o Outcome) String() string {
	switch o.Status {
	case StatusProcessed:
		return fmt.Sprintf("processed: %s", o.Path)
	case StatusSkipped:
		return fmt.Sprintf("skipped: %s (%s)", o.Path, o.Reason)
	default:
		return fmt.Sprintf("failed: %s: %s", o.Path, o.Reason)
	}
}

// Report lists outcomes in the order the targets were given.
type Report struct {
	Outcomes []Outcome
}

// Count returns how many outcomes have status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Processed returns the number of rewritten files.
func (r Report) Processed() int { return r.Count(StatusProcessed) }

// Skipped returns the number of missing files.
func (r Report) Skipped() int { return r.Count(StatusSkipped) }

// Failed returns the number of files that could not be read or written.
func (r Report) Failed() int { return r.Count(StatusFailed) }
