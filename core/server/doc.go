// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the configuration structure for server settings.
//
// # Configuration
//
// The Config struct defines the HTTP port and the optional API key used by
// the auth middleware. An empty API key disables authentication, which is
// the expected setup for local development.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the serve command when binding the listener.
package server
