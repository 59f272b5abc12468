// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/go-brand-kit/internal/branding"
	"github.com/MKhiriev/go-brand-kit/internal/logger"
)

const reasonNotFound = "not found"

// ResolveTargets joins relative targets onto root. Absolute targets are kept.
func ResolveTargets(root string, targets []string) []string {
	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		if filepath.IsAbs(t) {
			paths = append(paths, filepath.Clean(t))
			continue
		}
		paths = append(paths, filepath.Join(root, t))
	}
	return paths
}

// Processor rewrites target files with resolved branding values.
type Processor struct {
	fs       FileSystem
	resolver *branding.Resolver

	logger *logger.Logger
}

// NewProcessor returns a Processor. A nil fs selects [OSFileSystem].
func NewProcessor(fs FileSystem, resolver *branding.Resolver, logger *logger.Logger) *Processor {
	if fs == nil {
		fs = OSFileSystem{}
	}

	return &Processor{
		fs:       fs,
		resolver: resolver,
		logger:   logger,
	}
}

// ProcessAll processes paths sequentially and reports one outcome per path,
// in input order. Placeholder values are resolved once per call. A missing
// file is skipped and an I/O error fails only the file it happened on.
//
// The returned error is non-nil only when placeholder values cannot be
// resolved, in which case no file is touched.
func (p *Processor) ProcessAll(paths []string) (Report, error) {
	subst, err := NewSubstituter(p.resolver)
	if err != nil {
		return Report{}, fmt.Errorf("error preparing substitution: %w", err)
	}

	p.logger.Info().
		Str("app_name", subst.Value(branding.AppName)).
		Str("app_short_name", subst.Value(branding.AppShortName)).
		Int("targets", len(paths)).
		Msg("processing branding files")

	report := Report{Outcomes: make([]Outcome, 0, len(paths))}
	for _, path := range paths {
		outcome := p.process(path, subst)
		p.logOutcome(outcome)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	return report, nil
}

func (p *Processor) process(path string, subst *Substituter) Outcome {
	if _, err := p.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Outcome{Path: path, Status: StatusSkipped, Reason: reasonNotFound}
		}
		return failed(path, err)
	}

	content, err := p.fs.ReadFile(path)
	if err != nil {
		return failed(path, err)
	}

	if err := p.fs.WriteFile(path, []byte(subst.Replace(string(content)))); err != nil {
		return failed(path, err)
	}

	return Outcome{Path: path, Status: StatusProcessed}
}

func failed(path string, err error) Outcome {
	return Outcome{Path: path, Status: StatusFailed, Reason: err.Error()}
}

func (p *Processor) logOutcome(o Outcome) {
	switch o.Status {
	case StatusProcessed:
		p.logger.Debug().Str("path", o.Path).Msg("branding file processed")
	case StatusSkipped:
		p.logger.Warn().Str("path", o.Path).Msg("branding file not found")
	default:
		p.logger.Error().Str("path", o.Path).Str("reason", o.Reason).Msg("error processing branding file")
	}
}
