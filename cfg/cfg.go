// Package cfg loads optional compiler configuration from a TOML file,
// providing the defaults (see Default) the driver falls back to when no
// such file exists.
package cfg

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the driver's tunables.  CLI flags always take precedence
// over whatever a loaded file sets.
type Config struct {
	// CCPath is the external preprocessor/assembler/linker driver.
	CCPath string `toml:"cc_path"`

	// KeepAssembly mirrors -S: keep the emitted .s file after linking.
	KeepAssembly bool `toml:"keep_assembly"`

	// Debug mirrors -D: enable debug logging/printing of each stage.
	Debug bool `toml:"debug"`

	// StopAfter is one of "lex", "parse", "tacky", "codegen", or "" for a
	// full run.
	StopAfter string `toml:"stop_after"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{CCPath: "gcc"}
}

// Load reads path and merges it over Default().  A missing file is not an
// error: Load simply returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.CCPath == "" {
		cfg.CCPath = "gcc"
	}
	return cfg, nil
}
