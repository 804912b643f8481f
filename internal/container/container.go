package container

// State classifies the workspace container as seen by the runtime.
type State string

const (
	StateAbsent  State = "absent"
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// Record is a live view of the workspace container: an opaque runtime
// identifier plus its current state. Records are re-queried on every
// invocation, never persisted.
type Record struct {
	ID    string
	State State
}

// StateFromDocker maps a raw Docker status string to a State.
func StateFromDocker(dockerStatus string) State {
	switch dockerStatus {
	case "running":
		return StateRunning
	case "exited", "created", "dead", "paused", "restarting":
		return StateStopped
	default:
		return StateAbsent
	}
}
