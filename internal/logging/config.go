package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "HELLO_LOG_LEVEL"
	EnvLogTimestamp = "HELLO_LOG_TIMESTAMP"
	EnvLogNoColor   = "HELLO_LOG_NOCOLOR"
	EnvLogConfig    = "HELLO_LOG_CONFIG"
)

const appName = "hello"

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
}

type fileConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
	NoColor   bool   `toml:"no_color"`
}

var configureOnce sync.Once

func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

func ConfigureTests() {
	Configure(ProfileTest)
}

// Configure installs the global logger once per process. Output always goes
// to stderr; stdout belongs to the emitter.
func Configure(profile Profile) {
	configureOnce.Do(func() {
		cfg, err := resolveConfig(profile, os.Getenv)
		Install(os.Stderr, cfg)
		if err != nil {
			log.Warn().Msgf("logging.Configure config ignored err=%v", err)
		}
	})
}

// Install replaces the global logger with one built from cfg.
func Install(out io.Writer, cfg Config) zerolog.Logger {
	logger := New(out, cfg)
	log.Logger = logger
	return logger
}

func New(out io.Writer, cfg Config) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}
	ctx := zerolog.New(output).Level(cfg.Level).With().Str("app", appName)
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger()
}

func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Timestamp: false, NoColor: true}
	default:
		return Config{Level: zerolog.WarnLevel, Timestamp: true}
	}
}

// resolveConfig layers defaults, the optional TOML file, then env. A bad file
// is reported but the remaining layers still apply.
func resolveConfig(profile Profile, getenv func(string) string) (Config, error) {
	cfg := DefaultConfig(profile)
	var fileErr error
	if path := strings.TrimSpace(getenv(EnvLogConfig)); path != "" {
		fileErr = applyFile(&cfg, path)
	}
	applyEnvOverrides(&cfg, getenv)
	return cfg, fileErr
}

func applyFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load log config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load log config: unknown key %q", undecoded[0].String())
	}

	next := *cfg
	if meta.IsDefined("level") {
		lvl, ok := parseLevel(raw.Level)
		if !ok {
			return fmt.Errorf("parse level: unknown level %q", raw.Level)
		}
		next.Level = lvl
	}
	if meta.IsDefined("timestamp") {
		next.Timestamp = raw.Timestamp
	}
	if meta.IsDefined("no_color") {
		next.NoColor = raw.NoColor
	}
	*cfg = next
	return nil
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if lvl, ok := parseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(getenv(EnvLogTimestamp)); ok {
		cfg.Timestamp = v
	}
	if v, ok := parseBool(getenv(EnvLogNoColor)); ok {
		cfg.NoColor = v
	}
}

// parseLevel accepts zerolog's level names plus a few operator aliases.
// Unknown or empty input leaves the current level in place.
func parseLevel(raw string) (zerolog.Level, bool) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := levelAliases[name]; ok {
		return alias, true
	}
	if name == "" {
		return zerolog.NoLevel, false
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.NoLevel, false
	}
	return lvl, true
}

var levelAliases = map[string]zerolog.Level{
	"diagnostics": zerolog.TraceLevel,
	"warning":     zerolog.WarnLevel,
	"off":         zerolog.Disabled,
	"none":        zerolog.Disabled,
	"disable":     zerolog.Disabled,
	"inactive":    zerolog.Disabled,
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
