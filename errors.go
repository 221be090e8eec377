package byteview

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is matched by every error returned from Validate.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// InvalidUTF8Error reports the offset of the first byte that does not start
// a well-formed UTF-8 sequence.
type InvalidUTF8Error struct {
	Offset int
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%s at offset %d", ErrInvalidUTF8, e.Offset)
}

func (e *InvalidUTF8Error) Is(target error) bool {
	return target == ErrInvalidUTF8
}
