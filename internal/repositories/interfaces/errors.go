package interfaces

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks lookups that matched no row; handlers translate it to a
// 404 for the resource in question.
var ErrNotFound = errors.New("not found")

// ConflictError reports a uniqueness violation and which wire-format fields
// collided; handlers translate it to a 409.
type ConflictError struct {
	Fields []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s", strings.Join(e.Fields, ", "))
}

// AsConflict unwraps err into a ConflictError when it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		return conflict, true
	}
	return nil, false
}
