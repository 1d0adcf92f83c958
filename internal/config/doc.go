// Package config provides loading, merging, persistence, and validation of
// the qcc connection settings.
//
// Settings are assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables (QCC_* prefix)
//  2. JSON config file (platform config dir, overridable via QCC_CONFIG)
//  3. Built-in defaults
//
// The main entry point is [GetSettings]. [Settings.Save] persists the
// current values back to the config file so they survive across CLI
// invocations.
package config
