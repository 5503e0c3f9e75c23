/*
Package keybinds provides customizable keyboard binding management.

# Overview

Keys are matched to actions within a context. A context binding shadows a
global one, so ctrl+c (global) keeps working in every mode unless a context
rebinds it.

Contexts:
  - Global: Bindings available everywhere
  - Normal: Compass and control panel
  - Input: Heading text field focused
  - Help: Help viewer

# Components

Registry (registry.go):
  - Central storage for keybindings
  - Context-aware key matching with global fallback

Validator (validator.go):
  - Detects keys bound to more than one action
  - Rejects unknown actions and empty keys
  - Warns about shadowing and reserved key rebinds

Defaults (defaults.go):
  - Default keybinding configuration, used when no keybinds.json exists

# Configuration File Format

keybinds.json is JSONC. Each section maps an action to comma-separated keys,
and an action listed in a section loses its default keys there:

	{
	  // space is spelled out
	  "version": "1.0",
	  "normal": {
	    "toggle_auto": "space,t",
	    "reset": "0",
	  },
	}

# Example Usage

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	if action, ok := registry.Match(keybinds.ContextNormal, msg.String()); ok {
		// Handle action
	}

The Registry is not safe for concurrent writes. Build it before the
program starts and only read from it afterwards.
*/
package keybinds
