package shooter

// PlayerState tracks the player's health and score.
// Reaching zero health is terminal: GameOver latches once and further
// damage or healing is ignored until the state is replaced.
type PlayerState struct {
	Health    int
	MaxHealth int
	Score     int
	over      bool
}

// NewPlayerState returns a full-health player with no score.
func NewPlayerState(maxHealth int) PlayerState {
	return PlayerState{Health: maxHealth, MaxHealth: maxHealth}
}

// ApplyDamage returns the health left after taking pct percent of the
// current health, rounded up: newHealth = 0 if damage >= health.
func ApplyDamage(health, pct int) int {
	if health <= 0 || pct <= 0 {
		return max(health, 0)
	}
	damage := (health*pct + 99) / 100
	if damage >= health {
		return 0
	}
	return health - damage
}

// Damage applies percentage damage and reports whether this call ended the game.
func (p *PlayerState) Damage(pct int) (died bool) {
	if p.over {
		return false
	}
	p.Health = ApplyDamage(p.Health, pct)
	if p.Health == 0 {
		p.over = true
		return true
	}
	return false
}

// Heal restores up to amount health, capped at MaxHealth. Returns the amount restored.
func (p *PlayerState) Heal(amount int) int {
	if p.over || amount <= 0 {
		return 0
	}
	before := p.Health
	p.Health = min(p.MaxHealth, p.Health+amount)
	return p.Health - before
}

// AddScore increases the score. Negative amounts are ignored.
func (p *PlayerState) AddScore(amount int) {
	if amount > 0 {
		p.Score += amount
	}
}

// GameOver reports whether health has reached zero.
func (p PlayerState) GameOver() bool {
	return p.over
}
