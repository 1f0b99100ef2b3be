// File: validation.go
// Title: Configuration Validation
// Description: Checks configuration values against declarative rules
//              (presence, type, numeric bounds, allowed values) and reports
//              every violation at once.
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
	"sort"
	"strings"

	cferror "github.com/msto63/cleanfloat/foundation/core/error"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Whether the key must be present
	Type     string   // Expected type: "string", "int", "float" or "bool"
	Min      *float64 // Inclusive lower bound for numbers
	Max      *float64 // Inclusive upper bound for numbers
	OneOf    []string // Allowed values for strings, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Bound returns a pointer to v for use as ValidationRule.Min or Max
func Bound(v float64) *float64 {
	return &v
}

// Validate checks the configuration against rules. Environment overrides
// take part in the check the same way they take part in the getters.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// Err converts a failed result into a structured error, nil when valid
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	return cferror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(cferror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	var value interface{}
	if env := c.getEnvValue(key); env != "" {
		value = env
	} else {
		value = c.getValue(key)
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	switch rule.Type {
	case "int":
		n, ok := toInt(value)
		if !ok {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, value)
		}
		return checkBounds(key, float64(n), rule)
	case "float":
		f, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("field '%s' must be a number, got %v", key, value)
		}
		return checkBounds(key, f, rule)
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if lower := strings.ToLower(v); lower != "true" && lower != "false" {
				return fmt.Errorf("field '%s' must be a boolean, got %q", key, v)
			}
		default:
			return fmt.Errorf("field '%s' must be a boolean, got %v", key, value)
		}
	case "string", "":
		s, ok := value.(string)
		if !ok {
			if rule.Type == "string" {
				return fmt.Errorf("field '%s' must be a string, got %v", key, value)
			}
			s = fmt.Sprintf("%v", value)
		}
		return checkOneOf(key, s, rule.OneOf)
	default:
		return fmt.Errorf("field '%s' has unknown rule type %q", key, rule.Type)
	}

	return nil
}

func checkBounds(key string, v float64, rule ValidationRule) error {
	if rule.Min != nil && v < *rule.Min {
		return fmt.Errorf("field '%s' must be at least %v, got %v", key, *rule.Min, v)
	}
	if rule.Max != nil && v > *rule.Max {
		return fmt.Errorf("field '%s' must be at most %v, got %v", key, *rule.Max, v)
	}
	return nil
}

func checkOneOf(key, value string, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("field '%s' must be one of [%s], got %q", key, strings.Join(allowed, ", "), value)
}
