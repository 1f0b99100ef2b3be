// File: config.go
// Title: Configuration Loading and Access
// Description: Loads TOML or YAML configuration files into a nested map and
//              exposes dotted-key getters. Environment variables named
//              PREFIX_SECTION_KEY override file values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cferror "github.com/msto63/cleanfloat/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds parsed configuration data with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, nested like the file
}

// New returns an empty configuration that only consults the environment
func New(envPrefix string, defaults map[string]interface{}) *Config {
	return &Config{
		data:      mergeDefaults(map[string]interface{}{}, defaults),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	if strings.TrimSpace(filePath) == "" {
		return nil, cferror.New("config file path cannot be empty").
			WithCode(cferror.CodeValidationFailed).
			WithOperation(op)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cferror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(cferror.CodeNotFound).
				WithOperation(op).
				WithDetail("filePath", filePath)
		}
		return nil, cferror.Wrap(err, "failed to read config file").
			WithCode(cferror.CodeConfigError).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, cferror.Wrap(err, "failed to parse config file").
			WithCode(cferror.CodeInvalidConfig).
			WithOperation(op).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return data, nil
}

// mergeDefaults returns data with defaults filled in for missing keys,
// descending into nested sections.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data)+len(defaults))
	for k, v := range defaults {
		result[k] = v
	}
	for k, v := range data {
		if dv, ok := result[k].(map[string]interface{}); ok {
			if vm, ok := v.(map[string]interface{}); ok {
				result[k] = mergeDefaults(vm, dv)
				continue
			}
		}
		result[k] = v
	}
	return result
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(strings.TrimSpace(envValue)); err == nil {
			return intVal
		}
	}

	if intVal, ok := toInt(c.getValue(key)); ok {
		return intVal
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// getValue retrieves a configuration value by dotted key
func (c *Config) getValue(key string) interface{} {
	keys := strings.Split(key, ".")
	current := c.data

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// getEnvValue returns the environment override for key, if any
func (c *Config) getEnvValue(key string) string {
	if c.envPrefix == "" {
		return ""
	}
	return os.Getenv(c.formatEnvKey(key))
}

// formatEnvKey converts a config key to environment variable format:
// clean.min_precision with prefix CLEANFLOAT is CLEANFLOAT_CLEAN_MIN_PRECISION.
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// Keys returns all leaf keys in dotted form, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			if nested, ok := v.(map[string]interface{}); ok {
				walk(prefix+k+".", nested)
				continue
			}
			keys = append(keys, prefix+k)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	source := c.filePath
	if source == "" {
		source = "<memory>"
	}
	return fmt.Sprintf("Config{source: %s, format: %s, keys: %d}", source, c.format, len(c.Keys()))
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case string:
		if intVal, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return intVal, true
		}
	}
	return 0, false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if floatVal, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return floatVal, true
		}
	}
	return 0, false
}
