// Package cli parses command line arguments for the spec runner binary.
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds settings parsed from command line arguments.
type Config struct {
	Timeout  time.Duration // overall run timeout (0 means unlimited)
	LogLevel string        // log level (debug, info, warn, error)
	Headless bool          // run without a window
	NoColor  bool          // disable colored console output
	ShowHelp bool          // help flag
}

// ParseArgs parses command line arguments into a Config.
// Flags may appear in any order; environment variables HEADLESS, TIMEOUT,
// LOG_LEVEL and NO_COLOR act as fallbacks when the flag is not given.
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("ebispec", flag.ContinueOnError)

	config := &Config{}

	var timeoutSec int
	fs.IntVar(&timeoutSec, "timeout", 0, "terminate the run after this many seconds")
	fs.IntVar(&timeoutSec, "t", 0, "terminate the run after this many seconds (shorthand)")
	fs.StringVar(&config.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogLevel, "l", "info", "log level (shorthand)")
	fs.BoolVar(&config.Headless, "headless", false, "run the suite without a window")
	fs.BoolVar(&config.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&config.ShowHelp, "help", false, "show help")
	fs.BoolVar(&config.ShowHelp, "h", false, "show help (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Environment variable fallbacks (flags take precedence).
	if !config.Headless {
		if headlessEnv := os.Getenv("HEADLESS"); headlessEnv != "" {
			config.Headless = headlessEnv == "1" || strings.ToLower(headlessEnv) == "true"
		}
	}

	if !config.NoColor {
		// NO_COLOR follows the common convention: any non-empty value disables color.
		if os.Getenv("NO_COLOR") != "" {
			config.NoColor = true
		}
	}

	if timeoutSec == 0 {
		if timeoutEnv := os.Getenv("TIMEOUT"); timeoutEnv != "" {
			if t, err := strconv.Atoi(timeoutEnv); err == nil && t > 0 {
				timeoutSec = t
			}
		}
	}

	if config.LogLevel == "info" {
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			config.LogLevel = strings.ToLower(logLevelEnv)
		}
	}

	if timeoutSec < 0 {
		return nil, fmt.Errorf("timeout must be non-negative, got %d", timeoutSec)
	}
	config.Timeout = time.Duration(timeoutSec) * time.Second

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[config.LogLevel] {
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", config.LogLevel)
	}

	return config, nil
}

// PrintHelp prints the usage message.
func PrintHelp() {
	fmt.Fprintf(os.Stdout, `ebispec - in-engine spec runner

Usage:
  ebispec [options]

Options:
  -t, --timeout <seconds>     terminate the run after this many seconds (default: unlimited)
  -l, --log-level <level>     log level: debug, info, warn, error (default: info)
  --headless                  run the suite without a window
  --no-color                  disable colored output
  -h, --help                  show this help

Environment Variables:
  HEADLESS=1                  enable headless mode
  TIMEOUT=<seconds>           run timeout in seconds
  LOG_LEVEL=<level>           log level
  NO_COLOR=1                  disable colored output

Examples:
  ebispec --headless            run the suite without opening a window
  ebispec --timeout 30          abort a wedged run after 30 seconds
  ebispec --log-level debug     enable debug logging
`)
}
