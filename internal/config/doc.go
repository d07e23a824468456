// Package config provides configuration management for the timesheet
// report tool.
//
// Configuration is resolved in three layers, each overriding the last:
//
// 1. Built-in defaults (Default)
// 2. An optional YAML config file (config.yaml or configs/config.yaml)
// 3. Environment variables with the TSR_ prefix (e.g. TSR_INPUT_PATH)
//
// Command-line flags are applied by the cmd layer on top of the loaded
// Config, followed by a final Validate call.
//
// All dates use the 2006-01-02 layout. Validate parses them once so the
// rest of the program only ever sees time.Time values.
package config
