// Package config provides configuration loading, merging, and validation
// facilities for the keyforge client.
//
// Configuration is assembled from multiple sources. Sources are merged with
// mergo, which only fills fields that are still zero, so the first source
// that sets a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (JSON, or YAML for .yaml/.yml paths)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
