package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"dfview/internal/dataframe"
	"dfview/internal/logger"
	"dfview/internal/tui"
)

var log = logger.Named("cli")

func main() {
	logger.Configure()

	root, rest, err := parseRootArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "init-config":
			if err := initConfigMain(root, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "show-config":
			if err := showConfigMain(root, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	if len(rest) != 1 {
		fmt.Fprintln(os.Stderr, "usage: dfview [flags] <file.csv|file.tsv|file.xlsx>")
		os.Exit(2)
	}
	runViewer(root, rest[0])
}

func runViewer(root rootArgs, path string) {
	cfg, err := loadConfig(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logFile, _, err := logger.SetupFile(cfg.LogPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize log file (%s): %v\n", cfg.LogPath, err)
	} else {
		defer logFile.Close()
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warnf("invalid log level %q: %v", cfg.LogLevel, err)
	}

	frame, err := dataframe.Load(path, dataframe.LoadOptions{Sheet: root.sheet})
	if err != nil {
		log.WithError(err).Error("load failed")
		fmt.Fprintf(os.Stderr, "load %s: %v\n", path, err)
		os.Exit(1)
	}
	log.WithFields(logger.Fields{"rows": frame.Len(), "cols": frame.Width()}).Infof("loaded %s", path)

	result, err := tui.Run(tui.Options{
		Frame:  frame,
		Title:  filepath.Base(path),
		Config: cfg,
	})
	if err != nil {
		log.Fatalf("tui: %v", err)
	}
	log.WithField("session", result.SessionID).Info("exit")
}
