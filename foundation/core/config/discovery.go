// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration
//              file matching a set of base names and extensions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cferror "github.com/msto63/cleanfloat/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Defaults   map[string]interface{}
	Required   bool // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations of the cleanfloat CLI:
// the working directory, then $HOME/.config/cleanfloat.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "cleanfloat"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"cleanfloat"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "CLEANFLOAT",
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, an empty configuration backed by the defaults
// and the environment is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, cferror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", cferror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(candidates, ", "))).
		WithCode(cferror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every path FindConfigFile would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, dir := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, filename+ext))
			}
		}
	}
	return paths
}
