package cliconfig

import "fmt"

// Load layers the config file (when present) and SLOTBOOK_* variables on top
// of cfg, skipping anything set by a flag, then validates the result.
func Load(cfg *Config, path string, changed map[string]bool) error {
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}
