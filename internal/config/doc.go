// Package config provides configuration loading, merging, and validation
// facilities for the grocy-sync client.
//
// Configuration is assembled from multiple sources. For each field the
// first source holding a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig]; [BindFlags] registers the
// command-line source on a pflag.FlagSet.
package config
