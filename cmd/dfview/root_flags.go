package main

import (
	"flag"
	"fmt"
	"io"
)

type rootArgs struct {
	cfgPath   string
	sheet     string
	noMouse   bool
	logLevel  string
	overrides []string
}

func parseRootArgs(args []string, output io.Writer) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("dfview", flag.ContinueOnError)
	fs.SetOutput(output)
	var root rootArgs
	var overrides stringSlice
	fs.StringVar(&root.cfgPath, "config", "", "Path to config.toml (default ~/.dfview/config.toml)")
	fs.StringVar(&root.sheet, "sheet", "", "Worksheet to open for xlsx files (default: first sheet)")
	fs.BoolVar(&root.noMouse, "no-mouse", false, "Disable mouse support")
	fs.StringVar(&root.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: dfview [flags] <file.csv|file.tsv|file.xlsx>")
		fmt.Fprintln(output, "       dfview [flags] init-config | show-config")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}

	all := append([]string{}, overrides...)
	if root.noMouse {
		all = append(all, "mouse=false")
	}
	if root.logLevel != "" {
		all = append(all, fmt.Sprintf("log_level=%s", root.logLevel))
	}
	root.overrides = all
	return root, fs.Args(), nil
}
