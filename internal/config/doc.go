// Package config provides the bootstrap settings for gateway-init.
//
// Settings are assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flag overrides
//  2. Environment variables
//  3. Built-in defaults
//
// The main entry point is [GetSettings]. The resulting [Settings] value is
// passed explicitly into every component of the bootstrap pipeline.
package config
