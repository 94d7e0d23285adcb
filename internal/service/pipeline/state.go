package pipeline

// State is the pipeline lifecycle state.
type State int32

const (
	StateStopped State = iota
	StateStarting
	StateBackfilling
	StateLive
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateBackfilling:
		return "backfilling"
	case StateLive:
		return "live"
	default:
		return "unknown"
	}
}
