package bio

import (
	"fmt"
	"strings"
)

// EmptyInputError indicates the raw biography was empty after trimming.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "rawBio is required"
}

// ProfanityError indicates the raw biography contained banned terms. The
// offending surface forms are listed so the caller can show them back.
type ProfanityError struct {
	Terms []string
}

func (e *ProfanityError) Error() string {
	return fmt.Sprintf("rawBio contains inappropriate language: %s", strings.Join(e.Terms, ", "))
}
