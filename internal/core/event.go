package core

// Event is a discrete gameplay notification produced by a simulation tick.
// The platform forwards events to collaborators such as the audio sink.
type Event uint8

const (
	EventNone     Event = iota
	EventJump           // Thrust pressed while grounded
	EventCollect        // Present or cocoa picked up
	EventBad            // Coal picked up
	EventPowerUp        // Power-up acquired
	EventGameOver       // Run ended
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventJump:
		return "jump"
	case EventCollect:
		return "collect"
	case EventBad:
		return "bad"
	case EventPowerUp:
		return "powerup"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
