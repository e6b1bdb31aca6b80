package session

import "errors"

// Error variables for configuration and workspace state.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrStateDirEmpty      = errors.New("state_dir cannot be empty")
	ErrInvalidColor       = errors.New("color must be auto, always or never")
	ErrInvalidToday       = errors.New("CHK_TODAY must be YYYY-MM-DD")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")
	ErrStateCorrupt       = errors.New("state file is corrupt")
)
