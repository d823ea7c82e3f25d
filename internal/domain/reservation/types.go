package reservation

// RequestState starts at "requested"; later values are organizer-assigned and
// opaque to the allocation protocol.
type RequestState string

const StateRequested RequestState = "requested"

func (s RequestState) String() string {
	return string(s)
}
