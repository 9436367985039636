package game

// StateID is one phase of the top-level presentation sequence. Exactly one
// state is active at a time; transitions go through Game.Enter.
type StateID int

const (
	StateLogo StateID = iota
	StateTitle
	StateObjective
	StatePlaying
	StateLevelComplete
)

// String returns a human-readable name for the state.
func (s StateID) String() string {
	switch s {
	case StateLogo:
		return "logo"
	case StateTitle:
		return "title"
	case StateObjective:
		return "objective"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "level-complete"
	default:
		return "unknown"
	}
}
