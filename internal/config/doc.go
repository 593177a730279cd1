// Package config loads dirsweep's YAML configuration.
//
// A missing file is not an error: DefaultConfig is used. Command-line flags are
// layered on top with MergeWithFlags.
package config
