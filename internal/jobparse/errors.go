package jobparse

import "fmt"

// ParseError marks a job description whose structured extraction did not
// produce a conforming JobRequirements record. No job requirements means no
// evaluation is possible, so this is fatal for the whole run.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job description parse failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job description parse failed: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
