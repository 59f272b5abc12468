// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "processed: a.json", Outcome{Path: "a.json", Status: StatusProcessed}.String())
	assert.Equal(t, "skipped: b.json (not found)", Outcome{Path: "b.json", Status: StatusSkipped, Reason: "not found"}.String())
	assert.Equal(t, "failed: c.json: permission denied", Outcome{Path: "c.json", Status: StatusFailed, Reason: "permission denied"}.String())
}

func TestReport_Counts(t *testing.T) {
	r := Report{Outcomes: []Outcome{
		{Status: StatusProcessed},
		{Status: StatusProcessed},
		{Status: StatusSkipped},
		{Status: StatusFailed},
	}}

	assert.Equal(t, 2, r.Processed())
	assert.Equal(t, 1, r.Skipped())
	assert.Equal(t, 1, r.Failed())
	assert.Equal(t, 0, Report{}.Processed())
}
