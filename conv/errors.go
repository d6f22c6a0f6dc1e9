package conv

import (
	"errors"
	"fmt"
)

var (
	//ErrUnknownTag reports union tag without source alternative
	ErrUnknownTag = errors.New("unknown union tag")
	//ErrUnexpectedValue reports value representation not matching source type category
	ErrUnexpectedValue = errors.New("unexpected value")
)

// UnknownTagError represents union value with a tag outside source alternatives, it indicates corrupted input
type UnknownTagError struct {
	Tag          int
	Alternatives int
	Type         string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%v %v: expected [0..%v) for %v", ErrUnknownTag, e.Tag, e.Alternatives, e.Type)
}

// Is returns true for ErrUnknownTag
func (e *UnknownTagError) Is(target error) bool {
	return target == ErrUnknownTag
}

func unexpectedValue(expected string, value interface{}) error {
	return fmt.Errorf("%w: expected %v representation but had %T", ErrUnexpectedValue, expected, value)
}
