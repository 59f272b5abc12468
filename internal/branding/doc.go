// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package branding resolves the branding and identity values of the
// application (name, issuer strings, email senders, webhook header, analytics
// domain, company name) from the environment.
//
// Every key is bound to exactly one environment variable and one fallback
// rule. A rule is either a literal or a function of other keys, so the
// defaults form a small dependency graph:
//
//	APP_NAME ──► EMAIL_FROM_NAME, AUTH_ISSUER, AUTH_RP_NAME,
//	             WEBHOOK_SECRET_HEADER, SIGNING_CERTIFICATE_TEXT,
//	             COMPANY_NAME, COMPANY_NAME_NO_COMMA
//	WEBAPP_URL ─► INTERNAL_WEBAPP_URL
//
// A [Resolver] keeps no state besides its [Lookup]: each call consults the
// environment again and walks the graph from scratch, so overrides are
// observed on every call. Callers that want a stable view take a
// [Resolver.Snapshot].
//
// An environment value that is present but empty is treated exactly like an
// unset variable.
package branding
