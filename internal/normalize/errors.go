// Package normalize provides text cleanup and section detection for CVs and job descriptions.
package normalize

import "fmt"

// InputTooLargeError is returned when a document exceeds the processing
// size bound. It is the only hard failure the normalizer produces.
type InputTooLargeError struct {
	Size  int
	Limit int
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input too large: %d bytes exceeds limit of %d bytes", e.Size, e.Limit)
}
