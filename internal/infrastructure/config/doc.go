// Package config loads and validates aircon-core configuration.
//
// Configuration comes from three layers, each overriding the previous:
//
//  1. Hardcoded defaults (defaultConfig)
//  2. A YAML file (configs/config.yaml by default)
//  3. Environment variables (AIRCON_SECTION_KEY)
//
// The loaded Config is immutable for the process lifetime. In particular
// the remote backend vendor is a startup-only choice: changing it requires
// a restart, mirroring how the encoder hardware is wired.
package config
