package domain

import (
	"fmt"
	"time"
)

// Window bounds the activity that counts toward a rule. When AllTime is set
// Start and End are ignored.
type Window struct {
	AllTime bool
	Start   *time.Time
	End     *time.Time
}

// Validate checks that a bounded window has both ends in order.
func (w Window) Validate() error {
	if w.AllTime {
		return nil
	}
	if w.Start == nil || w.End == nil {
		return fmt.Errorf("%w: rule window requires start and end unless all_time", ErrInvalidRule)
	}
	if w.End.Before(*w.Start) {
		return fmt.Errorf("%w: rule window ends before it starts", ErrInvalidRule)
	}
	return nil
}

// EndsAfter reports whether a bounded window closes after t.
func (w Window) EndsAfter(t time.Time) bool {
	return !w.AllTime && w.End != nil && w.End.After(t)
}
