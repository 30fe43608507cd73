// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --config, --log, --verbose, --keys, --format, --version

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mauromedda/rawtty/internal/mode/inspect"
)

type cliArgs struct {
	configPath string
	logPath    string
	verbose    bool
	keys       bool
	format     string
	version    bool
}

func parseFlags() cliArgs {
	args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	return args
}

func parseArgs(fs *flag.FlagSet, argv []string) (cliArgs, error) {
	var args cliArgs

	fs.StringVar(&args.configPath, "config", "", "YAML settings file")
	fs.StringVar(&args.logPath, "log", "", "Append log output to this file")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.keys, "keys", false, "Run the key inspector instead of the editor")
	fs.StringVar(&args.format, "format", "text", "Key inspector output: text or json")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	if !inspect.ValidFormat(args.format) {
		return cliArgs{}, fmt.Errorf("invalid -format %q: want text or json", args.format)
	}
	return args, nil
}
