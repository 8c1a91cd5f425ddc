package base

import "errors"

var (
	// ErrCustomSettingsUnsupported used when custom settings are found in the
	// config when they shouldn't be
	ErrCustomSettingsUnsupported = errors.New("custom settings not supported")
	// ErrInvalidCustomSettings used when bad custom settings are found in the config
	ErrInvalidCustomSettings = errors.New("invalid custom settings in config")
)

// Strategy is the base implementation embedded by strategy handlers
type Strategy struct{}
