package entity

// EventKind identifies a notable simulation event, mostly for audio cues
type EventKind int

const (
	EventShoot EventKind = iota
	EventJump
	EventHit
	EventShieldHit
	EventRolesReversed
	EventRolesRestored
	EventGameOver
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventShoot:
		return "Shoot"
	case EventJump:
		return "Jump"
	case EventHit:
		return "Hit"
	case EventShieldHit:
		return "ShieldHit"
	case EventRolesReversed:
		return "RolesReversed"
	case EventRolesRestored:
		return "RolesRestored"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
