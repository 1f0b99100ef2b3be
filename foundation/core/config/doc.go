// Package config loads cleanfloat configuration files.
//
// Package: config
// Title: Configuration Management
// Description: TOML and YAML configuration files with dotted-key access,
//              environment overrides, defaults, validation and discovery.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// A configuration file looks like this:
//
//	[clean]
//	min_precision = 2
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[json]
//	indent = "  "
//
// Keys are read with dotted paths. With the env prefix CLEANFLOAT, the
// variable CLEANFLOAT_CLEAN_MIN_PRECISION overrides clean.min_precision:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	minPrecision := cfg.GetInt("clean.min_precision")
//
// Config is safe for concurrent use.
package config
