// Package config loads, validates and watches the penstroke configuration.
//
// Configuration comes from one file, in TOML or YAML depending on its
// extension, layered over built-in defaults and then environment overrides:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← PENSTROKE_LOG_LEVEL, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/penstroke/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sections
//
//	[input]
//	double_click_ms = 400
//	double_click_distance = 4
//
//	[hittest]
//	tolerance = 1
//	curve_tolerance = 2
//
//	[tool]
//	mode = "selection"
//	hit_policy = "prefer-unselected"
//
//	[log]
//	level = "info"
//	file = ""
//
//	[plugins]
//	mould-curve = "mould.lua"
//
// Plugin keys are gesture kind names; values are Lua script paths, relative
// to the config file's directory unless absolute.
//
// # Live Reload
//
// Watcher reports changes to the config file through a channel so the event
// loop can apply them between events.
package config
