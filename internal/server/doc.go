// Package server runs the HTTP server of the branding kit.
//
// It handles startup, signal handling, and graceful shutdown.
package server
