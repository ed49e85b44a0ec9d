package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// FileList is a repeatable flag collecting file paths.
// It implements the flag.Value interface.
type FileList []string

// ParseFlags parses the config creator's command-line flags from args
// (without the program name).
//
// Flags:
//
//	-o/-output    file the server config is written to ("-" for stdout)
//	-log-level    log level (debug, info, warn, error)
//	-env-file     dotenv file with server variables, repeatable; values
//	              expand $VAR unless single-quoted
//	-c/-config    json file path with tool settings
//	-version      print build info and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var envFiles FileList

	fs := newFlagSet(&cfg, &envFiles)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %q", fs.Args())
	}

	cfg.Source.EnvFiles = envFiles
	return &cfg, nil
}

// PrintUsage writes the flag usage block to w.
func PrintUsage(w io.Writer) {
	fs := newFlagSet(&StructuredConfig{}, &FileList{})
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage of config-creator:")
	fs.PrintDefaults()
}

// newFlagSet binds the tool flags to cfg. Its own output is discarded so
// parse failures surface only through the returned error.
func newFlagSet(cfg *StructuredConfig, envFiles *FileList) *flag.FlagSet {
	fs := flag.NewFlagSet("config-creator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Output.Path, "o", "", "Output file path (default stdout)")
	fs.StringVar(&cfg.Output.Path, "output", "", "Output file path (alias)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.Var(envFiles, "env-file", "Dotenv file with server variables (repeatable).\n"+
		"Unquoted and double-quoted values expand $VAR and ${VAR};\n"+
		"single-quote a value to keep '$' literal, e.g. PASSWORD='pa$$word'")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print build info and exit")

	return fs
}

// String returns the collected paths joined by commas.
func (l *FileList) String() string {
	if l == nil {
		return ""
	}

	return strings.Join(*l, ",")
}

// Set appends one path. Empty paths are rejected.
func (l *FileList) Set(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("empty file path")
	}

	*l = append(*l, s)
	return nil
}
