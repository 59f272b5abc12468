// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package assets bakes branding values into static files such as web app
// manifests.
//
// Target files contain placeholder tokens like {{APP_NAME}}. [Processor]
// rewrites each target in place, replacing every token with the resolved
// value. Files are handled one after another in the given order, and a
// problem with one file is recorded in the [Report] without stopping the
// rest. Once a file has been processed it holds no tokens, so running the
// processor again leaves it unchanged.
package assets
