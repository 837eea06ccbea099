package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config 是唯一的持久化配置文件结构。
type Config struct {
	MinColumnWidth int    `toml:"min_column_width"`
	MaxColumnWidth int    `toml:"max_column_width"`
	AscendingIcon  string `toml:"ascending_icon"`
	DescendingIcon string `toml:"descending_icon"`
	Mouse          bool   `toml:"mouse"`
	LogPath        string `toml:"log_path"`
	LogLevel       string `toml:"log_level"`
	Theme          Theme  `toml:"theme"`
	Source         string `toml:"-"`
}

// Theme 描述表格配色，值为 lipgloss 可识别的颜色字符串。
type Theme struct {
	HeaderForeground string `toml:"header_foreground"`
	HeaderBackground string `toml:"header_background"`
	FocusBackground  string `toml:"focus_background"`
	SelectBackground string `toml:"select_background"`
	StatusForeground string `toml:"status_foreground"`
	SortIcon         string `toml:"sort_icon"`
}

func Default() Config {
	return Config{
		MinColumnWidth: 4,
		MaxColumnWidth: 32,
		AscendingIcon:  "▲",
		DescendingIcon: "▼",
		Mouse:          true,
		LogPath:        "logs/dfview.log",
		LogLevel:       "info",
		Theme: Theme{
			HeaderForeground: "#cdd6f4",
			HeaderBackground: "#313244",
			FocusBackground:  "#89b4fa",
			SelectBackground: "#45475a",
			StatusForeground: "#a6adc8",
			SortIcon:         "#f9e2af",
		},
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dfview", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg.normalized(), nil
}

func applyEnv(cfg *Config) {
	if env := strings.TrimSpace(os.Getenv("DFVIEW_LOG_PATH")); env != "" {
		cfg.LogPath = env
	}
}

// normalized 修正互相矛盾或缺失的取值。
func (c Config) normalized() Config {
	def := Default()
	if c.MinColumnWidth <= 0 {
		c.MinColumnWidth = def.MinColumnWidth
	}
	if c.MaxColumnWidth < c.MinColumnWidth {
		c.MaxColumnWidth = c.MinColumnWidth
	}
	if c.AscendingIcon == "" {
		c.AscendingIcon = def.AscendingIcon
	}
	if c.DescendingIcon == "" {
		c.DescendingIcon = def.DescendingIcon
	}
	return c
}
