package models

// PasskeyOptions is the relying-party description a client needs to start a
// passkey ceremony.
type PasskeyOptions struct {
	// RPName is the display name shown by authenticators.
	RPName string `json:"rpName"`

	// RPID is the hostname of the webapp URL.
	RPID string `json:"rpId"`

	// Origin is the webapp URL as configured.
	Origin string `json:"origin"`

	// Timeout bounds one ceremony, in milliseconds.
	Timeout int64 `json:"timeout"`
}
