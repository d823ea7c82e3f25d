package reservation

import "errors"

const maxNoteLength = 500

var ErrNoteTooLong = errors.New("note exceeds maximum length")

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	if len(value) > maxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}
