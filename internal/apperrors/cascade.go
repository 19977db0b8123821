package apperrors

import "fmt"

// PartialCascadeError reports a site cascade delete that stopped partway: some
// rooms were deleted, the failing room and everything after it remain, and the
// site document was left in place. Room deletions are idempotent, so the caller
// may safely retry the whole cascade from the start.
type PartialCascadeError struct {
	SiteID    string
	Deleted   int
	Remaining int
	Err       error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("cascade delete of site %s stopped: %d rooms deleted, %d remaining: %v",
		e.SiteID, e.Deleted, e.Remaining, e.Err)
}

func (e *PartialCascadeError) Unwrap() error {
	return e.Err
}

// RecalculationError reports that a room mutation persisted but the follow-up
// site aggregate refresh did not. The triggering mutation is NOT rolled back;
// callers surface this as a warning on an otherwise successful operation.
type RecalculationError struct {
	SiteID string
	Err    error
}

func (e *RecalculationError) Error() string {
	return fmt.Sprintf("site %s aggregate recalculation failed: %v", e.SiteID, e.Err)
}

func (e *RecalculationError) Unwrap() error {
	return e.Err
}
