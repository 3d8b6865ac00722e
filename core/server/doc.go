// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this
// package only defines the configuration structure for it, such as the
// listen port and the API key protecting the endpoints.
//
// # Usage
//
// This package is primarily used by the core/config package to embed
// server settings and by the start command to build the listen address.
package server
