package workflow

import "fmt"

// NoCandidatesError marks a run in which every submitted resume failed
// extraction. With nothing to evaluate, the run fails as a whole.
type NoCandidatesError struct {
	Submitted int
}

func (e *NoCandidatesError) Error() string {
	return fmt.Sprintf("no candidates survived extraction (%d resumes submitted)", e.Submitted)
}
