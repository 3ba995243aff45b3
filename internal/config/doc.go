// Package config loads dexter's startup configuration.
//
// # Resolution Order
//
//  1. Built-in defaults (see Default)
//  2. The TOML file given with --config, or ~/.config/dexter/config.toml
//  3. Environment variables, including any set by a .env file in the
//     working directory
//
// A missing config file is not an error. Blank or non-positive values in the
// file keep the default.
//
// # Fields
//
//	base_url        = "https://pokeapi.co/api/v2/"   # DEXTER_BASE_URL
//	initial_count   = 20
//	request_timeout = "10s"
//	log_file        = "~/.local/state/dexter/dexter.log"  # DEXTER_LOG_FILE
//
// Paths beginning with ~ are expanded against the user's home directory.
package config
