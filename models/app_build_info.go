// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotAvailable stands in for build metadata that was not stamped into the
// binary.
const NotAvailable = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags "-X main.build...".
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// OrNotAvailable replaces every empty field with [NotAvailable].
func (a AppBuildInfo) OrNotAvailable() AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(a.buildVersion),
		buildDate:    orNotAvailable(a.buildDate),
		buildCommit:  orNotAvailable(a.buildCommit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
