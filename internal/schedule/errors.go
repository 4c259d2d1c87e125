package schedule

import "fmt"

// ErrInvalidPeriodicity indicates a follow-up interval of less than one day.
// Upstream validation rejects these at company creation, so the engine only
// sees one if a caller bypassed that path.
type ErrInvalidPeriodicity struct {
	Days int
}

func (e *ErrInvalidPeriodicity) Error() string {
	return fmt.Sprintf("communication periodicity must be at least 1 day, got %d", e.Days)
}
