package game

// SelectionState is the state of the selection machine
type SelectionState int

const (
	Idle SelectionState = iota
	Armed
)

func (s SelectionState) String() string {
	if s == Armed {
		return "Armed"
	}
	return "Idle"
}
