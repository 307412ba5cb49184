package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/goemmet/pkg/config"
)

// envVarPrefix is the prefix for all goemmet environment variables.
const envVarPrefix = "GOEMMET_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"SYNTAX":     {field: "syntax", typ: envTypeString},
	"TYPE":       {field: "type", typ: envTypeString},
	"MAX_REPEAT": {field: "max_repeat", typ: envTypeInt},
	"COMMENTS":   {field: "comment.enabled", typ: envTypeBool},
	"BEM":        {field: "bem.enabled", typ: envTypeBool},
	"SHORT_HEX":  {field: "stylesheet.shortHex", typ: envTypeBool},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOEMMET_ (e.g., GOEMMET_SYNTAX).
func LoadFromEnv(user *config.UserConfig) error {
	if user == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(user, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(user *config.UserConfig, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(user, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		setOption(user, mapping.field, b)
		return nil
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(user, mapping.field, i)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(user *config.UserConfig, field, value string) error {
	switch field {
	case "syntax":
		user.Syntax = value
	case "type":
		user.Type = config.Type(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(user *config.UserConfig, field string, value int) error {
	switch field {
	case "max_repeat":
		user.MaxRepeat = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setOption writes a dotted option key onto the config's options map.
func setOption(user *config.UserConfig, key string, value any) {
	if user.Options == nil {
		user.Options = make(map[string]any)
	}
	user.Options[key] = value
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOEMMET_SYNTAX":     "Output syntax: html, css, jsx, pug, ...",
		"GOEMMET_TYPE":       "Expansion type: markup or stylesheet",
		"GOEMMET_MAX_REPEAT": "Cap on nodes produced by repeated groups",
		"GOEMMET_COMMENTS":   "Append comments to expanded tags: true or false",
		"GOEMMET_BEM":        "Enable BEM class transforms: true or false",
		"GOEMMET_SHORT_HEX":  "Shorten hex colors where possible: true or false",
	}
}
