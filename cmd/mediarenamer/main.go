package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// args holds the command-line arguments
var args struct {
	Directory          string `arg:"positional,required" help:"Directory containing media files to rename"`
	Rename             bool   `arg:"-r,--rename" help:"Rename files (default: dry-run)"`
	Yes                bool   `arg:"-y,--yes" help:"Don't ask for confirmation before each rename"`
	Verbose            bool   `arg:"-v,--verbose" help:"Enable verbose output"`
	Exiftool           bool   `arg:"-e,--exiftool" help:"Run exiftool against the directory first"`
	ChecksumDuplicates bool   `arg:"--checksum-duplicates" help:"Skip files whose canonical target already holds identical content"`
	ConfigFile         string `arg:"--config" help:"Path to config file"`
}

// config holds the application configuration
type config struct {
	Directory          string `yaml:"-"`
	ConfigFile         string `yaml:"-"`
	Rename             bool   `yaml:"rename"`
	Yes                bool   `yaml:"yes"`
	Verbose            bool   `yaml:"verbose"`
	Exiftool           bool   `yaml:"exiftool"`
	ChecksumDuplicates bool   `yaml:"checksum_duplicates"`
}

// setDefaults initializes the config with default values
func setDefaults(cfg *config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get user home directory: %v", err)
	}

	cfg.ConfigFile = filepath.Join(homeDir, ".mediarenamerrc")
	cfg.Rename = false
	cfg.Yes = false
	cfg.Verbose = false
	cfg.Exiftool = false
	cfg.ChecksumDuplicates = false
	return nil
}

// parseConfigFile reads and parses the YAML configuration file
func parseConfigFile(cfg *config) error {
	data, err := os.ReadFile(cfg.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file doesn't exist, just return without an error
			return nil
		}
		return fmt.Errorf("failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}

	return nil
}

// validateConfig checks if the configuration is valid
func validateConfig(cfg *config) error {
	if cfg.Directory == "" {
		return fmt.Errorf("directory is not specified")
	}

	info, err := os.Stat(cfg.Directory)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist: %s", cfg.Directory)
	}
	if err != nil {
		return fmt.Errorf("cannot access directory %s: %v", cfg.Directory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", cfg.Directory)
	}

	return nil
}

// wasFlagProvided checks if a CLI flag was explicitly provided
func wasFlagProvided(flagName string) bool {
	for _, a := range os.Args[1:] {
		if a == flagName || strings.HasPrefix(a, flagName+"=") {
			return true
		}
	}
	return false
}

// newLogger builds the console logger handed to renameFiles.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func run() error {
	// Create an instance of the config struct
	cfg := config{}

	// Set default values first
	if err := setDefaults(&cfg); err != nil {
		return fmt.Errorf("setting defaults: %w", err)
	}

	// Parse command-line arguments
	arg.MustParse(&args)

	// Apply config file path from command-line argument if provided
	if args.ConfigFile != "" {
		cfg.ConfigFile = args.ConfigFile
	}

	// Parse configuration file
	if err := parseConfigFile(&cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	// Override with command-line arguments
	cfg.Directory = args.Directory
	if wasFlagProvided("-r") || wasFlagProvided("--rename") {
		cfg.Rename = args.Rename
	}
	if wasFlagProvided("-y") || wasFlagProvided("--yes") {
		cfg.Yes = args.Yes
	}
	if wasFlagProvided("-v") || wasFlagProvided("--verbose") {
		cfg.Verbose = args.Verbose
	}
	if wasFlagProvided("-e") || wasFlagProvided("--exiftool") {
		cfg.Exiftool = args.Exiftool
	}
	if wasFlagProvided("--checksum-duplicates") {
		cfg.ChecksumDuplicates = args.ChecksumDuplicates
	}

	// Validate the configuration
	if err := validateConfig(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg.Verbose)

	// Let exiftool handle embedded capture metadata before the filename pass
	if cfg.Exiftool {
		if err := runExiftool(cfg.Directory); err != nil {
			return err
		}
	}

	var confirm confirmFunc = autoApprove
	if cfg.Rename && !cfg.Yes {
		confirm = askConfirm(os.Stdin, os.Stdout)
	}

	if err := renameFiles(cfg, logger, confirm); err != nil {
		return fmt.Errorf("renaming files: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
