// Package config loads, normalizes, and validates matcompat configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: where the vocabulary database lives, how logs are emitted,
// which extra stopwords to filter, and the default output format.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
