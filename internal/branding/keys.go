// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

import "strings"

// Key identifies one resolvable branding value.
type Key string

const (
	AppName                 Key = "APP_NAME"
	AppShortName            Key = "APP_SHORT_NAME"
	WebAppURL               Key = "WEBAPP_URL"
	InternalWebAppURL       Key = "INTERNAL_WEBAPP_URL"
	BillingEnabled          Key = "BILLING_ENABLED"
	DocumentUploadSizeLimit Key = "DOCUMENT_UPLOAD_SIZE_LIMIT"
	EmailFromName           Key = "EMAIL_FROM_NAME"
	EmailFromAddress        Key = "EMAIL_FROM_ADDRESS"
	ServiceUserEmail        Key = "SERVICE_USER_EMAIL"
	AuthIssuer              Key = "AUTH_ISSUER"
	AuthRPName              Key = "AUTH_RP_NAME"
	WebhookSecretHeader     Key = "WEBHOOK_SECRET_HEADER"
	SigningCertificateText  Key = "SIGNING_CERTIFICATE_TEXT"
	AnalyticsDomain         Key = "ANALYTICS_DOMAIN"
	CompanyName             Key = "COMPANY_NAME"
	CompanyNameNoComma      Key = "COMPANY_NAME_NO_COMMA"
)

// Constants that are not configurable.
const (
	SupportEmail = "support@documenso.com"
	APIV2BetaURL = "/api/v2-beta"
)

const publicEnvPrefix = "NEXT_PUBLIC_"

var keyOrder = []Key{
	AppName,
	AppShortName,
	WebAppURL,
	InternalWebAppURL,
	BillingEnabled,
	DocumentUploadSizeLimit,
	EmailFromName,
	EmailFromAddress,
	ServiceUserEmail,
	AuthIssuer,
	AuthRPName,
	WebhookSecretHeader,
	SigningCertificateText,
	AnalyticsDomain,
	CompanyName,
	CompanyNameNoComma,
}

// Keys returns every known key in declaration order.
func Keys() []Key {
	out := make([]Key, len(keyOrder))
	copy(out, keyOrder)
	return out
}

// EnvVar returns the environment variable bound to k, or "" for an unknown key.
func (k Key) EnvVar() string {
	r, ok := defaultRules[k]
	if !ok {
		return ""
	}
	return r.envVar
}

// IsPublic reports whether the value of k may be shipped to browsers.
func (k Key) IsPublic() bool {
	return strings.HasPrefix(k.EnvVar(), publicEnvPrefix)
}

func (k Key) String() string {
	return string(k)
}
