package config

import "github.com/grovetools/navpanel/logging"

// mergeConfigs merges override configuration into base. The modules list is
// never merged: it always comes from override.
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}
	result.Modules = override.Modules
	result.Panel = mergePanel(base.Panel, override.Panel)
	result.TUI = mergeTUI(base.TUI, override.TUI)
	result.Logging = mergeLogging(base.Logging, override.Logging)

	return &result
}

func mergePanel(base, override PanelConfig) PanelConfig {
	result := base

	if override.Title != "" {
		result.Title = override.Title
	}
	if override.Logo != "" {
		result.Logo = override.Logo
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.OnUnknown != "" {
		result.OnUnknown = override.OnUnknown
	}
	if override.HideHeader {
		result.HideHeader = true
	}
	if override.HideHelp {
		result.HideHelp = true
	}

	return result
}

func mergeTUI(base, override TUIConfig) TUIConfig {
	result := base

	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Icons != "" {
		result.Icons = override.Icons
	}
	if override.Mouse != nil {
		result.Mouse = override.Mouse
	}
	if len(override.Keybindings) > 0 {
		merged := make(map[string][]string, len(base.Keybindings)+len(override.Keybindings))
		for action, keys := range base.Keybindings {
			merged[action] = keys
		}
		for action, keys := range override.Keybindings {
			merged[action] = keys
		}
		result.Keybindings = merged
	}

	return result
}

func mergeLogging(base, override logging.Config) logging.Config {
	result := base

	if override.Level != "" {
		result.Level = override.Level
	}
	if override.ReportCaller {
		result.ReportCaller = true
	}
	if override.File.Disabled {
		result.File.Disabled = true
	}
	if override.File.Path != "" {
		result.File.Path = override.File.Path
	}
	if override.Format.Preset != "" {
		result.Format.Preset = override.Format.Preset
	}
	if override.Format.DisableTimestamp {
		result.Format.DisableTimestamp = true
	}
	if override.Format.DisableComponent {
		result.Format.DisableComponent = true
	}
	if override.Format.StructuredToStderr != "" {
		result.Format.StructuredToStderr = override.Format.StructuredToStderr
	}

	return result
}
