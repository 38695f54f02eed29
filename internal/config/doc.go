// Package config holds runtime configuration for ComplyView.
//
// Configuration flows from three sources, strongest first: CLI flags,
// a YAML configuration file (.complyview), and built-in defaults. The
// file is probed in the current directory and then in the XDG config
// directory, or loaded from an explicit path.
//
// The configuration is passed through the application via dependency
// injection rather than global state.
package config
