package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config keeps the per-user settings of the interactive mode, loaded from
// the rc file.
type Config struct {
	// Prompt is written before each read when the input is a terminal.
	Prompt string `yaml:"prompt"`
	// Precision is the number of significant digits shown for results; -1
	// means the shortest representation that round-trips.
	Precision int `yaml:"precision"`
	// MaxHistory caps the number of history entries kept; 0 means no limit.
	MaxHistory int `yaml:"max-history"`
}

func defaultConfig() Config {
	return Config{Prompt: ">> ", Precision: -1, MaxHistory: 0}
}

// RCPath returns the default path of the rc file.
func RCPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine rc file path: %w", err)
	}
	return filepath.Join(dir, "calc", "rc.yaml"), nil
}

// loadConfig reads the rc file at path. A missing or empty path gives the
// defaults; an unreadable or invalid file gives the defaults with a warning
// on stderr, since a broken rc file should not keep the calculator from
// starting.
func loadConfig(path string, stderr io.Writer) Config {
	config := defaultConfig()
	if path == "" {
		return config
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Warning: cannot read rc file %q: %v\n", path, err)
		}
		return config
	}
	if err := yaml.Unmarshal(bs, &config); err != nil {
		fmt.Fprintf(stderr, "Warning: cannot parse rc file %q: %v\n", path, err)
		return defaultConfig()
	}
	if config.Precision < -1 {
		fmt.Fprintf(stderr, "Warning: invalid precision %d in rc file, using default\n",
			config.Precision)
		config.Precision = -1
	}
	if config.MaxHistory < 0 {
		fmt.Fprintf(stderr, "Warning: invalid max-history %d in rc file, using default\n",
			config.MaxHistory)
		config.MaxHistory = 0
	}
	return config
}
