// Package config provides Scribe's configuration.
//
// Configuration is assembled from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← SCRIBE_EDITOR_TAB_WIDTH=8
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/scribe/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// The config file may be TOML or YAML; the format is chosen by extension.
// A missing config file is not an error.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.WithPath(path))
//	if err != nil {
//	    return err
//	}
//	width := cfg.Editor.TabWidth
package config
