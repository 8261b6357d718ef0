// Package config provides YAML-based game configuration loading and
// difficulty math for the shooter.
package config

// ShooterConfig contains every tunable of the space shooter rules.
// Distances are world pixels, speeds are pixels per second and durations
// are milliseconds.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      PatrolConfig     `yaml:"enemy"`
	Asteroid   PatrolConfig     `yaml:"asteroid"`
	Boss       PatrolConfig     `yaml:"boss"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Drops      DropConfig       `yaml:"drops"`
	Stars      StarConfig       `yaml:"stars"`
	Combat     CombatConfig     `yaml:"combat"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulated viewport.
type WorldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DespawnX   float64 `yaml:"despawn_x"`   // Patrol entities left of this x are removed
	BaseRadius float64 `yaml:"base_radius"` // Hitbox radius at scale 1.0
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Speed       float64 `yaml:"speed"`
	Scale       float64 `yaml:"scale"`
	MaxHealth   int     `yaml:"max_health"`
	FireDelayMs int     `yaml:"fire_delay_ms"`
	Deadzone    float64 `yaml:"deadzone"` // Directional input below this magnitude is ignored
}

// SpawnIntervalConfig defines how a spawn interval shrinks with difficulty.
type SpawnIntervalConfig struct {
	BaseMs  int `yaml:"base_ms"`
	StepMs  int `yaml:"step_ms"`
	FloorMs int `yaml:"floor_ms"`
}

// RangeF is an inclusive float range.
type RangeF struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// PatrolConfig defines a patrolling hostile category (enemy, asteroid, boss).
type PatrolConfig struct {
	Spawn            SpawnIntervalConfig `yaml:"spawn"`
	VelocityX        float64             `yaml:"velocity_x"`
	Scale            float64             `yaml:"scale"`
	BaseHealth       int                 `yaml:"base_health"`
	SpeedK           float64             `yaml:"speed_k"`
	HealthK          float64             `yaml:"health_k"`
	MoveRange        RangeF              `yaml:"move_range"`
	MoveSpeed        RangeF              `yaml:"move_speed"`
	ShootDelayMs     int                 `yaml:"shoot_delay_ms"` // 0 disables shooting
	ShotSpacing      float64             `yaml:"shot_spacing"`
	Reward           int                 `yaml:"reward"`
	ContactDamagePct int                 `yaml:"contact_damage_pct"`
}

// BulletConfig defines projectile behavior for both sides.
type BulletConfig struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	SpeedK      float64 `yaml:"speed_k"`
	TTLMs       int     `yaml:"ttl_ms"`
	Scale       float64 `yaml:"scale"`
	DamagePct   int     `yaml:"damage_pct"` // Damage to the player per enemy bullet
}

// DropConfig defines energy drops.
type DropConfig struct {
	Chance     float64 `yaml:"chance"`
	Heal       int     `yaml:"heal"`
	Speed      float64 `yaml:"speed"`
	LifetimeMs int     `yaml:"lifetime_ms"`
	Scale      float64 `yaml:"scale"`
	BossCount  int     `yaml:"boss_count"`
	Jitter     float64 `yaml:"jitter"`
}

// StarConfig defines the cosmetic background star stream.
type StarConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// CombatConfig holds miscellaneous combat and AI tuning.
type CombatConfig struct {
	Deadband        float64 `yaml:"deadband"`          // Patrol entities stop tracking within this many pixels
	DeathDelayMs    int     `yaml:"death_delay_ms"`    // Delay between the player's death and the game-over notice
	LevelBannerMs   int     `yaml:"level_banner_ms"`   // How long the level-up banner stays visible
	ExplosionScale  float64 `yaml:"explosion_scale"`   // Visual scale multiplier for explosions
	HitFlashScale   float64 `yaml:"hit_flash_scale"`   // Visual scale for non-lethal hits
	SoundVolumeBase float64 `yaml:"sound_volume_base"` // Default volume for sound cues
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled         bool `yaml:"enabled"`
	MaxLevel        int  `yaml:"max_level"`
	LevelIntervalMs int  `yaml:"level_interval_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown values return an empty preset, meaning "keep the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LevelIntervalForPreset returns the level-up interval for a preset.
func LevelIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 45000
	case DifficultyHard:
		return 20000
	default:
		return 30000
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
