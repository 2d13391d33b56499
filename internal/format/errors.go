package format

import (
	"fmt"
)

type UsageError struct{}

func (e *UsageError) Error() string {
	return "gjf expects 1 or more filenames as arguments"
}

// FixupError reports a non-zero exit from the fixup pass. Unlike the
// formatter's, this status is authoritative and becomes the driver's own
// exit status.
type FixupError struct {
	Status int
}

func (e *FixupError) Error() string {
	return fmt.Sprintf("fixup pass failed with status %d", e.Status)
}

// ExitCode returns the status the driver process should exit with.
func (e *FixupError) ExitCode() int {
	return e.Status
}

// CheckError reports that the formatter's dry-run found files needing
// reformatting.
type CheckError struct {
	Status int
}

func (e *CheckError) Error() string {
	return "files require reformatting"
}

// ExitCode returns the status the driver process should exit with.
func (e *CheckError) ExitCode() int {
	return e.Status
}
