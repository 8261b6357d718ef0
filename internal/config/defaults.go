package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded file cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:      800,
			Height:     600,
			DespawnX:   -50,
			BaseRadius: 32,
		},
		Player: PlayerConfig{
			StartX:      100,
			StartY:      300,
			Speed:       300,
			Scale:       0.6,
			MaxHealth:   100,
			FireDelayMs: 200,
			Deadzone:    0.1,
		},
		Enemy: PatrolConfig{
			Spawn:            SpawnIntervalConfig{BaseMs: 2000, StepMs: 300, FloorMs: 500},
			VelocityX:        -150,
			Scale:            0.6,
			BaseHealth:       3,
			SpeedK:           0.4,
			HealthK:          0.2,
			MoveRange:        RangeF{Min: 50, Max: 150},
			MoveSpeed:        RangeF{Min: 60, Max: 120},
			ShootDelayMs:     2000,
			Reward:           10,
			ContactDamagePct: 30,
		},
		Asteroid: PatrolConfig{
			Spawn:            SpawnIntervalConfig{BaseMs: 3000, StepMs: 200, FloorMs: 1200},
			VelocityX:        -100,
			Scale:            0.8,
			BaseHealth:       6,
			SpeedK:           0.15,
			HealthK:          0.1,
			MoveRange:        RangeF{Min: 30, Max: 80},
			MoveSpeed:        RangeF{Min: 20, Max: 50},
			Reward:           5,
			ContactDamagePct: 15,
		},
		Boss: PatrolConfig{
			Spawn:            SpawnIntervalConfig{BaseMs: 15000, StepMs: 1000, FloorMs: 8000},
			VelocityX:        -60,
			Scale:            1.5,
			BaseHealth:       20,
			SpeedK:           0.3,
			HealthK:          0.25,
			MoveRange:        RangeF{Min: 80, Max: 200},
			MoveSpeed:        RangeF{Min: 40, Max: 80},
			ShootDelayMs:     1500,
			ShotSpacing:      20,
			Reward:           50,
			ContactDamagePct: 40,
		},
		Bullets: BulletConfig{
			PlayerSpeed: 500,
			EnemySpeed:  300,
			SpeedK:      0.2,
			TTLMs:       2000,
			Scale:       0.15,
			DamagePct:   10,
		},
		Drops: DropConfig{
			Chance:     0.3,
			Heal:       20,
			Speed:      100,
			LifetimeMs: 5000,
			Scale:      0.4,
			BossCount:  3,
			Jitter:     30,
		},
		Stars: StarConfig{
			Count:    60,
			MinSpeed: 20,
			MaxSpeed: 80,
		},
		Combat: CombatConfig{
			Deadband:        10,
			DeathDelayMs:    1000,
			LevelBannerMs:   2000,
			ExplosionScale:  1.0,
			HitFlashScale:   0.5,
			SoundVolumeBase: 0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			MaxLevel:        10,
			LevelIntervalMs: 30000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
