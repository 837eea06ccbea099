package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "min_column_width":
			if n, err := strconv.Atoi(val); err == nil {
				cfg.MinColumnWidth = n
			}
		case "max_column_width":
			if n, err := strconv.Atoi(val); err == nil {
				cfg.MaxColumnWidth = n
			}
		case "ascending_icon":
			cfg.AscendingIcon = val
		case "descending_icon":
			cfg.DescendingIcon = val
		case "mouse":
			if b, err := strconv.ParseBool(val); err == nil {
				cfg.Mouse = b
			}
		case "log_path":
			cfg.LogPath = val
		case "log_level":
			cfg.LogLevel = val
		case "theme.header_foreground":
			cfg.Theme.HeaderForeground = val
		case "theme.header_background":
			cfg.Theme.HeaderBackground = val
		case "theme.focus_background":
			cfg.Theme.FocusBackground = val
		case "theme.select_background":
			cfg.Theme.SelectBackground = val
		case "theme.status_foreground":
			cfg.Theme.StatusForeground = val
		case "theme.sort_icon":
			cfg.Theme.SortIcon = val
		}
	}
	return cfg.normalized()
}
