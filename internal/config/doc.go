// Package config loads runtime configuration from multiple sources (YAML files,
// environment variables, CLI flags) with precedence: CLI flags > YAML config >
// Environment variables > Defaults. Besides logger settings it carries the
// manifest of mail items placed in the mailbox.
package config
