package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/dumbterm/internal/domain/entity"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateProfiles(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of %s (got: %q)", strings.Join(validLogLevels, ", "), config.Logging.Level))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of %s (got: %q)", strings.Join(validLogFormats, ", "), config.Logging.Format))
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	layout := config.Layout
	if layout.MinimumPaneFraction <= 0 || layout.MinimumPaneFraction >= 0.5 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.minimum_pane_fraction must be between 0 and 0.5 exclusive (got: %g)", layout.MinimumPaneFraction))
	}
	if layout.ResizeStep <= 0 || layout.ResizeStep >= 1 {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.resize_step must be between 0 and 1 exclusive (got: %g)", layout.ResizeStep))
	}
	if _, err := entity.ParseSendMode(layout.DefaultSendMode); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"layout.default_send_mode must be one of off, group, all (got: %q)", layout.DefaultSendMode))
	}
	return validationErrors
}

func validateProfiles(config *Config) []string {
	var validationErrors []string
	if config.DefaultProfile == "" {
		validationErrors = append(validationErrors, "default_profile cannot be empty")
	} else if _, ok := config.Profiles[config.DefaultProfile]; !ok {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"default_profile %q is not defined in [profiles]", config.DefaultProfile))
	}
	for _, name := range config.ProfileNames() {
		if strings.TrimSpace(name) == "" {
			validationErrors = append(validationErrors, "profiles cannot contain an empty name")
		}
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	actions := make([]string, 0, len(config.Keybindings))
	for action := range config.Keybindings {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		if strings.TrimSpace(config.Keybindings[action]) == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings.%s cannot be empty", action))
		}
	}
	return validationErrors
}
