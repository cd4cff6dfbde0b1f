// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (loaded into the process environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied after merging and the result is validated. The main
// entry point is [GetStructuredConfig]; the returned value is treated as
// read-only for the lifetime of the process.
package config
