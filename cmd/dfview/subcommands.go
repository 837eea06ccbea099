package main

import (
	"fmt"
	"io"

	"dfview/internal/config"
)

// initConfigMain 写出默认配置，已有文件时也会覆盖为默认值加 -c 覆盖项。
func initConfigMain(root rootArgs, out io.Writer) error {
	path := root.cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg := config.ApplyKVOverrides(config.Default(), root.overrides)
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(out, "wrote %s\n", path)
	return nil
}

func showConfigMain(root rootArgs, out io.Writer) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", cfg.Source)
	_, err = out.Write(data)
	return err
}

func loadConfig(root rootArgs) (config.Config, error) {
	cfg, err := config.Load(root.cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return config.ApplyKVOverrides(cfg, root.overrides), nil
}
