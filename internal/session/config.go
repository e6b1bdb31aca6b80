package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/civil"
	"github.com/tailscale/hujson"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	StateDir   string `json:"state_dir"`
	ExportFile string `json:"export_file,omitempty"`
	Color      string `json:"color,omitempty"`

	// Resolved values (computed, not serialized)
	EffectiveCwd string           `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	StateDirAbs  string           `json:"-"` // Absolute path to the state directory
	TodayPin     *civil.Date      `json:"-"` // From CHK_TODAY; nil follows the clock
	Now          func() time.Time `json:"-"` // Clock; nil means time.Now

	// Sources tracks which config files were loaded (for diagnostics)
	Sources ConfigSources `json:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		StateDir:   ".chk",
		ExportFile: "cabw_checklist.json",
		Color:      ColorAuto,
	}
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".chk.json"

// TodayEnv overrides today's date for deadline classification.
const TodayEnv = "CHK_TODAY"

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/chk/config.json if set, otherwise ~/.config/chk/config.json.
// Returns empty string if home directory cannot be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "chk", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "chk", "config.json")
	}

	return ""
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride  string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath       string            // -c/--config flag value
	StateDirOverride string            // --state-dir flag value; empty means no override
	Env              map[string]string // environment variables
	Now              func() time.Time  // clock; nil means time.Now
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/chk/config.json or $XDG_CONFIG_HOME/chk/config.json)
// 3. Project config file at default location (.chk.json, if exists)
// 4. Explicit config file via configPath (if non-empty)
// 5. CLI overrides.
//
// All paths in the returned Config are resolved to absolute paths.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	if input.StateDirOverride != "" {
		cfg.StateDir = input.StateDirOverride
	}

	validateErr := validateConfig(cfg)
	if validateErr != nil {
		return Config{}, validateErr
	}

	pin, err := parseTodayPin(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.TodayPin = pin
	cfg.Now = input.Now
	cfg.EffectiveCwd = workDir

	if filepath.IsAbs(cfg.StateDir) {
		cfg.StateDirAbs = cfg.StateDir
	} else {
		cfg.StateDirAbs = filepath.Join(workDir, cfg.StateDir)
	}

	return cfg, nil
}

// ResolvePath makes p absolute relative to the effective working directory.
func (c *Config) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.EffectiveCwd, p)
}

// Today returns the date deadlines are classified against. It is read from
// the clock on every call unless CHK_TODAY pinned it.
func (c *Config) Today() civil.Date {
	if c.TodayPin != nil {
		return *c.TodayPin
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	return civil.DateOf(now())
}

func parseTodayPin(env map[string]string) (*civil.Date, error) {
	raw := env[TodayEnv]
	if raw == "" {
		return nil, nil
	}

	d, err := civil.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidToday, raw)
	}

	return &d, nil
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (Config, string, error) {
	globalCfgPath := getGlobalConfigPath(env)
	if globalCfgPath == "" {
		return Config{}, "", nil
	}

	globalCfg, explicitEmpty, loaded, err := loadConfigFile(globalCfgPath, false)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	if explicitEmpty["state_dir"] {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, globalCfgPath, ErrStateDirEmpty)
	}

	return globalCfg, globalCfgPath, nil
}

// loadProjectConfig loads the project config file (.chk.json) or an explicit config file.
// Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		cfgFile = filepath.Join(workDir, ConfigFileName)
		mustExist = false
	}

	fileCfg, explicitEmpty, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return Config{}, "", err
	}

	if !loaded {
		return Config{}, "", nil
	}

	if explicitEmpty["state_dir"] {
		return Config{}, "", fmt.Errorf("%w %s: %w", ErrConfigInvalid, cfgFile, ErrStateDirEmpty)
	}

	return fileCfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, a map of explicitly empty fields, whether file was loaded, and any error.
func loadConfigFile(path string, mustExist bool) (Config, map[string]bool, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, nil, false, nil
		}

		if mustExist {
			return Config{}, nil, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, nil, false, nil
	}

	cfg, explicitEmpty, parseErr := parseConfig(data)
	if parseErr != nil {
		return Config{}, nil, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, explicitEmpty, true, nil
}

func parseConfig(data []byte) (Config, map[string]bool, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return Config{}, nil, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	explicitEmpty := make(map[string]bool)

	if val, exists := raw["state_dir"]; exists {
		if str, ok := val.(string); ok && str == "" {
			explicitEmpty["state_dir"] = true
		}
	}

	return cfg, explicitEmpty, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.StateDir != "" {
		base.StateDir = overlay.StateDir
	}

	if overlay.ExportFile != "" {
		base.ExportFile = overlay.ExportFile
	}

	if overlay.Color != "" {
		base.Color = overlay.Color
	}

	return base
}

func validateConfig(cfg Config) error {
	if cfg.StateDir == "" {
		return ErrStateDirEmpty
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColor, cfg.Color)
	}

	return nil
}
