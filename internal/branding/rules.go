// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

import "fmt"

const (
	defaultAppName          = "Documenso"
	defaultWebAppURL        = "http://localhost:3000"
	defaultEmailFromAddress = "noreply@documenso.com"
	defaultServiceUserEmail = "serviceaccount@documenso.com"
	defaultAnalyticsDomain  = "documenso.com"

	// DefaultDocumentUploadSizeLimit is the upload limit in megabytes used when
	// the environment gives no usable number.
	DefaultDocumentUploadSizeLimit = 50

	truthy = "true"
)

// rule is the fallback attached to a key. A rule with derive set computes its
// default from the resolved values of deps, in order; otherwise literal (or
// number, for numeric keys) is the default.
type rule struct {
	envVar  string
	kind    Kind
	literal string
	number  float64
	deps    []Key
	derive  func(deps []string) string
}

func literal(envVar, value string) rule {
	return rule{envVar: envVar, kind: KindString, literal: value}
}

func sameAs(envVar string, dep Key) rule {
	return rule{
		envVar: envVar,
		kind:   KindString,
		deps:   []Key{dep},
		derive: func(deps []string) string { return deps[0] },
	}
}

func appNameFormat(envVar, format string) rule {
	return rule{
		envVar: envVar,
		kind:   KindString,
		deps:   []Key{AppName},
		derive: func(deps []string) string { return fmt.Sprintf(format, deps[0]) },
	}
}

var defaultRules = map[Key]rule{
	AppName:           literal("NEXT_PUBLIC_APP_NAME", defaultAppName),
	AppShortName:      literal("NEXT_PUBLIC_APP_SHORT_NAME", defaultAppName),
	WebAppURL:         literal("NEXT_PUBLIC_WEBAPP_URL", defaultWebAppURL),
	InternalWebAppURL: sameAs("NEXT_PRIVATE_INTERNAL_WEBAPP_URL", WebAppURL),
	BillingEnabled:    {envVar: "NEXT_PUBLIC_FEATURE_BILLING_ENABLED", kind: KindBool},
	DocumentUploadSizeLimit: {
		envVar: "NEXT_PUBLIC_DOCUMENT_SIZE_UPLOAD_LIMIT",
		kind:   KindNumber,
		number: DefaultDocumentUploadSizeLimit,
	},
	EmailFromName:          sameAs("NEXT_PRIVATE_SMTP_FROM_NAME", AppName),
	EmailFromAddress:       literal("NEXT_PRIVATE_SMTP_FROM_ADDRESS", defaultEmailFromAddress),
	ServiceUserEmail:       literal("NEXT_PRIVATE_SERVICE_USER_EMAIL", defaultServiceUserEmail),
	AuthIssuer:             sameAs("NEXT_PRIVATE_AUTH_ISSUER", AppName),
	AuthRPName:             sameAs("NEXT_PRIVATE_AUTH_RP_NAME", AppName),
	WebhookSecretHeader:    appNameFormat("NEXT_PRIVATE_WEBHOOK_SECRET_HEADER", "X-%s-Secret"),
	SigningCertificateText: appNameFormat("NEXT_PRIVATE_SIGNING_CERTIFICATE_TEXT", "Signed by %s"),
	AnalyticsDomain:        literal("NEXT_PRIVATE_ANALYTICS_DOMAIN", defaultAnalyticsDomain),
	CompanyName:            appNameFormat("NEXT_PUBLIC_COMPANY_NAME", "%s, Inc."),
	CompanyNameNoComma:     appNameFormat("NEXT_PUBLIC_COMPANY_NAME_NO_COMMA", "%s Inc."),
}

func init() {
	if err := validateRules(defaultRules); err != nil {
		panic(err)
	}
}

// validateRules checks that every dependency has a rule and that the
// dependency graph has no cycles.
func validateRules(rules map[Key]rule) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[Key]int, len(rules))

	var visit func(k Key, path []Key) error
	visit = func(k Key, path []Key) error {
		switch state[k] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %v", ErrRuleCycle, append(path, k))
		}

		r, ok := rules[k]
		if !ok {
			return fmt.Errorf("%w: %s (required by %v)", ErrMissingDependency, k, path)
		}

		state[k] = visiting
		for _, dep := range r.deps {
			if err := visit(dep, append(path, k)); err != nil {
				return err
			}
		}
		state[k] = done

		return nil
	}

	for k := range rules {
		if err := visit(k, nil); err != nil {
			return err
		}
	}

	return nil
}
