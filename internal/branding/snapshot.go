// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package branding

// Values is every branding value resolved at one point in time.
type Values struct {
	AppName                 string  `json:"appName"`
	AppShortName            string  `json:"appShortName"`
	WebAppURL               string  `json:"webappUrl"`
	InternalWebAppURL       string  `json:"internalWebappUrl"`
	BillingEnabled          bool    `json:"billingEnabled"`
	DocumentUploadSizeLimit float64 `json:"documentUploadSizeLimit"`
	EmailFromName           string  `json:"emailFromName"`
	EmailFromAddress        string  `json:"emailFromAddress"`
	ServiceUserEmail        string  `json:"serviceUserEmail"`
	AuthIssuer              string  `json:"authIssuer"`
	AuthRPName              string  `json:"authRpName"`
	WebhookSecretHeader     string  `json:"webhookSecretHeader"`
	SigningCertificateText  string  `json:"signingCertificateText"`
	AnalyticsDomain         string  `json:"analyticsDomain"`
	CompanyName             string  `json:"companyName"`
	CompanyNameNoComma      string  `json:"companyNameNoComma"`
}

// PublicValues is the subset of [Values] bound to NEXT_PUBLIC_ variables.
type PublicValues struct {
	AppName                 string  `json:"appName"`
	AppShortName            string  `json:"appShortName"`
	WebAppURL               string  `json:"webappUrl"`
	BillingEnabled          bool    `json:"billingEnabled"`
	DocumentUploadSizeLimit float64 `json:"documentUploadSizeLimit"`
	CompanyName             string  `json:"companyName"`
	CompanyNameNoComma      string  `json:"companyNameNoComma"`
}

// Snapshot resolves every key once. The result does not change when the
// environment does; take a new snapshot to observe overrides.
func (r *Resolver) Snapshot() Values {
	return Values{
		AppName:                 r.AppName(),
		AppShortName:            r.AppShortName(),
		WebAppURL:               r.WebAppURL(),
		InternalWebAppURL:       r.InternalWebAppURL(),
		BillingEnabled:          r.BillingEnabled(),
		DocumentUploadSizeLimit: r.DocumentUploadSizeLimit(),
		EmailFromName:           r.EmailFromName(),
		EmailFromAddress:        r.EmailFromAddress(),
		ServiceUserEmail:        r.ServiceUserEmail(),
		AuthIssuer:              r.AuthIssuer(),
		AuthRPName:              r.AuthRPName(),
		WebhookSecretHeader:     r.WebhookSecretHeader(),
		SigningCertificateText:  r.SigningCertificateText(),
		AnalyticsDomain:         r.AnalyticsDomain(),
		CompanyName:             r.CompanyName(),
		CompanyNameNoComma:      r.CompanyNameNoComma(),
	}
}

// Public drops every value that must stay server side.
func (v Values) Public() PublicValues {
	return PublicValues{
		AppName:                 v.AppName,
		AppShortName:            v.AppShortName,
		WebAppURL:               v.WebAppURL,
		BillingEnabled:          v.BillingEnabled,
		DocumentUploadSizeLimit: v.DocumentUploadSizeLimit,
		CompanyName:             v.CompanyName,
		CompanyNameNoComma:      v.CompanyNameNoComma,
	}
}
