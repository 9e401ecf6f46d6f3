package policy

import (
	"time"

	"campusvoice/internal/domain/entity"
)

// DeriveDueAt fills the due timestamp when absent. An existing dueAt is
// returned unchanged: changing slaHours after creation does not silently
// move a deadline.
func DeriveDueAt(createdAt time.Time, slaHours int, existing *time.Time) *time.Time {
	if existing != nil {
		return existing
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	due := createdAt.Add(time.Duration(slaHours) * time.Hour)
	return &due
}

// NormalizeSLAHours applies the creation-time default for absent or
// out-of-range values. Update payloads are stricter; see ValidSLAHours.
func NormalizeSLAHours(hours int) int {
	if hours < entity.MinSLAHours || hours > entity.MaxSLAHours {
		return entity.DefaultSLAHours
	}
	return hours
}

func ValidSLAHours(hours int) bool {
	return hours >= entity.MinSLAHours && hours <= entity.MaxSLAHours
}

// IsBreached reports whether the complaint is past due and still open.
// Used for notifications and reporting, never persisted.
func IsBreached(c *entity.Complaint, now time.Time) bool {
	return c.DueAt != nil && now.After(*c.DueAt) && c.Status != entity.StatusResolved
}
