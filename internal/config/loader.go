package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides the keys it names.
func LoadShooter(customPath string) (ShooterConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "shooter.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a simulation.
func (c ShooterConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player.max_health must be positive, got %d", c.Player.MaxHealth))
	}
	if c.Player.FireDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("player.fire_delay_ms must be positive, got %d", c.Player.FireDelayMs))
	}

	patrols := []struct {
		name string
		cfg  PatrolConfig
	}{{"enemy", c.Enemy}, {"asteroid", c.Asteroid}, {"boss", c.Boss}}
	for _, pc := range patrols {
		name, p := pc.name, pc.cfg
		if p.Spawn.BaseMs <= 0 || p.Spawn.FloorMs <= 0 {
			errs = append(errs, fmt.Errorf("%s.spawn intervals must be positive", name))
		}
		if p.Spawn.FloorMs > p.Spawn.BaseMs {
			errs = append(errs, fmt.Errorf("%s.spawn.floor_ms (%d) exceeds base_ms (%d)", name, p.Spawn.FloorMs, p.Spawn.BaseMs))
		}
		if p.BaseHealth <= 0 {
			errs = append(errs, fmt.Errorf("%s.base_health must be positive, got %d", name, p.BaseHealth))
		}
		if p.MoveRange.Min > p.MoveRange.Max || p.MoveSpeed.Min > p.MoveSpeed.Max {
			errs = append(errs, fmt.Errorf("%s ranges must have min <= max", name))
		}
		if p.ContactDamagePct < 0 || p.ContactDamagePct > 100 {
			errs = append(errs, fmt.Errorf("%s.contact_damage_pct must be in [0,100], got %d", name, p.ContactDamagePct))
		}
	}

	if c.Bullets.TTLMs <= 0 {
		errs = append(errs, fmt.Errorf("bullets.ttl_ms must be positive, got %d", c.Bullets.TTLMs))
	}
	if c.Drops.Chance < 0 || c.Drops.Chance > 1 {
		errs = append(errs, fmt.Errorf("drops.chance must be in [0,1], got %g", c.Drops.Chance))
	}
	if c.Drops.LifetimeMs <= 0 {
		errs = append(errs, fmt.Errorf("drops.lifetime_ms must be positive, got %d", c.Drops.LifetimeMs))
	}
	if c.Stars.MinSpeed > c.Stars.MaxSpeed {
		errs = append(errs, fmt.Errorf("stars.min_speed exceeds stars.max_speed"))
	}
	if c.Difficulty.MaxLevel < 1 {
		errs = append(errs, fmt.Errorf("difficulty.max_level must be >= 1, got %d", c.Difficulty.MaxLevel))
	}
	if c.Difficulty.LevelIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.level_interval_ms must be positive, got %d", c.Difficulty.LevelIntervalMs))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.LevelIntervalMs = LevelIntervalForPreset(preset)
}
