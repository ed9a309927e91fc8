package entity

// Kind identifies which reactive behavior an entity runs each tick
type Kind int

const (
	Boss Kind = iota
	EnemyBullet
	PlayerBullet
	Enemy
	Player
	Powerup
)

// String returns the lowercase name used in logs, events and metrics
func (k Kind) String() string {
	switch k {
	case Boss:
		return "boss"
	case EnemyBullet:
		return "enemy_bullet"
	case PlayerBullet:
		return "player_bullet"
	case Enemy:
		return "enemy"
	case Player:
		return "player"
	case Powerup:
		return "powerup"
	default:
		return "unknown"
	}
}
