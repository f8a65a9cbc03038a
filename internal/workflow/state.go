package workflow

import "strings"

// State represents the lifecycle of the upload workflow.
type State string

const (
	// StateIdle means no project is loaded and no separation is running.
	StateIdle State = "idle"
	// StateAwaitingCredits means the last upload was rejected for lack of
	// credits; the user must top up before retrying.
	StateAwaitingCredits State = "awaiting_credits"
	// StateSeparating means a separation is in flight.
	StateSeparating State = "separating"
	// StateReady means a project is loaded and mixable.
	StateReady State = "ready"
)

var allStates = []State{
	StateIdle,
	StateAwaitingCredits,
	StateSeparating,
	StateReady,
}

var stateSet = func() map[State]struct{} {
	set := make(map[State]struct{}, len(allStates))
	for _, state := range allStates {
		set[state] = struct{}{}
	}
	return set
}()

// AllStates returns the ordered list of known workflow states.
func AllStates() []State {
	cp := make([]State, len(allStates))
	copy(cp, allStates)
	return cp
}

// ParseState converts a string into a known State.
func ParseState(value string) (State, bool) {
	normalized := State(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := stateSet[normalized]
	return normalized, ok
}
