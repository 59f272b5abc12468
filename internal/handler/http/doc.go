// Package http implements the read-only HTTP surface of the branding kit.
//
// It serves the public branding values and the passkey relying-party options
// to the front-end, plus the application version. Request tracing and access
// logging are handled here before requests reach the service layer.
package http
