// Package config loads scribe configuration with koanf.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file, TOML or YAML by extension
//  3. SCRIBE_* entries of a .env file
//  4. SCRIBE_* environment variables
//
// Environment keys map to config keys by dropping the prefix, lower-casing
// and splitting section from key at the first underscore, so
// SCRIBE_COMMANDS_ENABLE_ALL_BY_DEFAULT sets commands.enable_all_by_default.
package config
