package enum

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("enum value not found")

// NotFoundError reports a wire string or ordinal that is not part of a subtype's set.
type NotFoundError struct {
	Kind      string // subtype name
	Value     string // offending wire string, or the ordinal in decimal
	ByOrdinal bool   // true when the lookup was by ordinal
}

func (e *NotFoundError) Error() string {
	if e.ByOrdinal {
		return fmt.Sprintf("%s: no constant with ordinal %s", e.Kind, e.Value)
	}
	return fmt.Sprintf("%s: no constant with value %q", e.Kind, e.Value)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
