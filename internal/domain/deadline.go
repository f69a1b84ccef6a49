package domain

import (
	"math"
	"time"
)

// Urgency classifies how close a card is to its deadline
type Urgency string

const (
	UrgencyNone    Urgency = "none"
	UrgencyOverdue Urgency = "overdue"
	UrgencyDueSoon Urgency = "due_soon"
	UrgencyOnTrack Urgency = "on_track"
)

// DueSoonWindow is how far ahead of the deadline a card counts as due soon
const DueSoonWindow = 24 * time.Hour

// Urgency returns the deadline urgency of the card at the given time
func (c Card) Urgency(now time.Time) Urgency {
	if c.Deadline == nil {
		return UrgencyNone
	}
	remaining := c.Deadline.Sub(now)
	switch {
	case remaining <= 0:
		return UrgencyOverdue
	case remaining <= DueSoonWindow:
		return UrgencyDueSoon
	default:
		return UrgencyOnTrack
	}
}

// TimeRemainingPercent returns the share of the created-to-deadline span still left,
// rounded to a whole percent. Cards without a deadline report 100.
func (c Card) TimeRemainingPercent(now time.Time) int {
	if c.Deadline == nil {
		return 100
	}
	created := c.CreatedAt
	if created.IsZero() {
		created = now
	}
	total := c.Deadline.Sub(created)
	if total <= 0 {
		return 0
	}
	remaining := c.Deadline.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	return int(math.Round(float64(remaining) / float64(total) * 100))
}
