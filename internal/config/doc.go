// Package config loads the bot's YAML configuration with environment
// variable expansion and duration parsing, validating required fields at
// startup.
package config
