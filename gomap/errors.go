package gomap

import "fmt"

// MarshalError reports a Go value that cannot be represented as a
// Node, naming the field path where conversion stopped.
type MarshalError struct {
	FieldPath string
	Message   string
}

func (e *MarshalError) Error() string {
	if e.FieldPath == "" {
		return fmt.Sprintf("gomap: %s", e.Message)
	}
	return fmt.Sprintf("gomap: %s: %s", e.FieldPath, e.Message)
}
