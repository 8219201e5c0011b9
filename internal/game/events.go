package game

import "fmt"

// EventKind classifies something that happened during a step or command.
type EventKind int

const (
	EventSpawnEnemy EventKind = iota
	EventSpawnAmmo
	EventMove
	EventFire
	EventKill
	EventCollect
	EventEnemyExit
	EventAmmoExit
	EventMissileExit
	EventDeath
)

func (k EventKind) String() string {
	switch k {
	case EventSpawnEnemy:
		return "spawn_enemy"
	case EventSpawnAmmo:
		return "spawn_ammo"
	case EventMove:
		return "move"
	case EventFire:
		return "fire"
	case EventKill:
		return "kill"
	case EventCollect:
		return "collect"
	case EventEnemyExit:
		return "enemy_exit"
	case EventAmmoExit:
		return "ammo_exit"
	case EventMissileExit:
		return "missile_exit"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// category groups kinds for the SimLog.
func (k EventKind) category() string {
	switch k {
	case EventSpawnEnemy, EventSpawnAmmo:
		return "spawn"
	case EventMove, EventDeath:
		return "player"
	case EventFire, EventMissileExit:
		return "missile"
	case EventKill, EventEnemyExit:
		return "enemy"
	case EventCollect, EventAmmoExit:
		return "ammo"
	default:
		return "session"
	}
}

// Event is one engine occurrence. Value carries the kind-specific number:
// rounds collected, ammo left after firing, or the score at death.
type Event struct {
	Kind   EventKind
	Frame  int
	Column int
	X, Y   float64
	Value  float64
}

// Message renders the event as a short feed line.
func (e Event) Message() string {
	switch e.Kind {
	case EventSpawnEnemy:
		return fmt.Sprintf("enemy dropped in lane %d", e.Column)
	case EventSpawnAmmo:
		return fmt.Sprintf("ammo dropped in lane %d", e.Column)
	case EventMove:
		return fmt.Sprintf("player now at (%.0f, %.0f)", e.X, e.Y)
	case EventFire:
		return fmt.Sprintf("missile away at lane %d, %d left", e.Column, int(e.Value))
	case EventKill:
		return fmt.Sprintf("enemy destroyed in lane %d", e.Column)
	case EventCollect:
		return fmt.Sprintf("collected %d rounds", int(e.Value))
	case EventEnemyExit:
		return fmt.Sprintf("enemy left lane %d", e.Column)
	case EventAmmoExit:
		return fmt.Sprintf("ammo missed in lane %d", e.Column)
	case EventMissileExit:
		return fmt.Sprintf("missile lost over lane %d", e.Column)
	case EventDeath:
		return fmt.Sprintf("struck in lane %d, score %d", e.Column, int(e.Value)/100)
	default:
		return e.Kind.String()
	}
}
