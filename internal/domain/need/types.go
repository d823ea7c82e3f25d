package need

type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateOpen, StateClosed:
		return true
	default:
		return false
	}
}
