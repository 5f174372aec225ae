// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/podlaunch/config.cue (resolved with
// adrg/xdg, so platform defaults apply when the variable is unset), falling back to
// config.cue in the working directory. Values are validated against the embedded CUE
// schema (config_schema.cue), merged over the defaults, and may be overridden with
// PODLAUNCH_ environment variables (for example PODLAUNCH_CONTAINER_ENGINE or
// PODLAUNCH_UI_VERBOSE).
package config
