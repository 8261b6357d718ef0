package shooter

import "github.com/vovakirdan/space-shooter/internal/core"

// Category identifies the kind of an entity.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryPlayerBullet
	CategoryEnemyBullet
	CategoryEnemy
	CategoryAsteroid
	CategoryBoss
	CategoryDrop
	CategoryStar

	categoryCount
)

// Categories lists every category in registry order.
var Categories = []Category{
	CategoryPlayer,
	CategoryPlayerBullet,
	CategoryEnemyBullet,
	CategoryEnemy,
	CategoryAsteroid,
	CategoryBoss,
	CategoryDrop,
	CategoryStar,
}

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryPlayerBullet:
		return "player_bullet"
	case CategoryEnemyBullet:
		return "enemy_bullet"
	case CategoryEnemy:
		return "enemy"
	case CategoryAsteroid:
		return "asteroid"
	case CategoryBoss:
		return "boss"
	case CategoryDrop:
		return "energy_drop"
	case CategoryStar:
		return "star"
	default:
		return "unknown"
	}
}

// IsPatrol reports whether entities of this category use patrol motion and carry health.
func (c Category) IsPatrol() bool {
	return c == CategoryEnemy || c == CategoryAsteroid || c == CategoryBoss
}

// Handle is a stable identifier for an entity. Handles are never reused
// within a registry, so a stale handle simply fails to resolve.
type Handle uint64

// NoHandle is the zero handle; it never refers to an entity.
const NoHandle Handle = 0

// Entity is a live game object owned by the Registry.
type Entity struct {
	Handle   Handle
	Category Category
	Pos      core.Vec
	Vel      core.Vec // pixels per second
	Active   bool
	Scale    float64

	// Patrol entities only
	Health    int
	MaxHealth int
	OriginalY float64
	MoveRange float64
	MoveSpeed float64

	SpawnedAt float64 // simulation time in ms
}

// Radius returns the hitbox radius for the given base radius.
func (e *Entity) Radius(base float64) float64 {
	return base * e.Scale
}
