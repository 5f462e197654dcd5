// Package config loads, normalizes, and validates podstats configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads an optional .env file, and honours
// environment fallbacks such as PODSTATS_EPISODES_DIR. The Config type
// centralizes every knob the CLI needs so transcript discovery, scoring
// thresholds, and report output are resolved in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
