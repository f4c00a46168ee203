package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	allowed := map[Status][]Status{
		StatusDraft:        {StatusUpcoming, StatusInProgress, StatusCompleted, StatusForceStopped},
		StatusUpcoming:     {StatusInProgress, StatusCompleted, StatusForceStopped},
		StatusInProgress:   {StatusCompleted, StatusForceStopped},
		StatusForceStopped: {StatusCompleted},
		StatusCompleted:    {},
	}
	all := []Status{StatusDraft, StatusUpcoming, StatusInProgress, StatusCompleted, StatusForceStopped}
	for from, tos := range allowed {
		for _, to := range all {
			want := false
			for _, ok := range tos {
				if ok == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestCampaignPredicates(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	c := Campaign{Status: StatusUpcoming, StartDate: now, EndDate: now.Add(time.Hour)}
	assert.True(t, c.DueForStart(now))
	assert.False(t, c.DueForStart(now.Add(-time.Second)))
	assert.False(t, c.DueForCompletion(now.Add(2*time.Hour)))

	c.Status = StatusInProgress
	assert.False(t, c.DueForStart(now))
	assert.False(t, c.DueForCompletion(c.EndDate), "end date is exclusive")
	assert.True(t, c.DueForCompletion(c.EndDate.Add(time.Minute)))

	c.Status = StatusForceStopped
	assert.True(t, c.DueForCompletion(c.EndDate.Add(time.Minute)))

	c.Status = StatusCompleted
	assert.False(t, c.DueForCompletion(c.EndDate.Add(time.Minute)))
}
