package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/domain/entity"
	"campusvoice/pkg/errors"
)

func TestSanitizeUpdateDropsDisallowedFields(t *testing.T) {
	// A faculty member sending slaHours alongside status gets the status
	// applied and the slaHours silently dropped, not an error.
	update, err := SanitizeUpdate(facultyUpdateFields, map[string]interface{}{
		FieldStatus:   entity.StatusResolved,
		FieldSLAHours: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{FieldStatus: entity.StatusResolved}, update)
}

func TestSanitizeUpdateInvalidEnum(t *testing.T) {
	_, err := SanitizeUpdate(adminUpdateFields, map[string]interface{}{
		FieldStatus: "closed",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Contains(t, err.Error(), "Invalid status")
}

func TestSanitizeUpdateAccumulatesViolations(t *testing.T) {
	_, err := SanitizeUpdate(adminUpdateFields, map[string]interface{}{
		FieldStatus:   "closed",
		FieldUrgency:  "extreme",
		FieldPriority: "p0",
		FieldSLAHours: 0,
	})

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Message, "Invalid status")
	assert.Contains(t, appErr.Message, "Invalid urgency")
	assert.Contains(t, appErr.Message, "Invalid priority")
	assert.Contains(t, appErr.Message, "Invalid SLA hours")
}

func TestSanitizeUpdateSLAHoursBounds(t *testing.T) {
	_, err := SanitizeUpdate(adminUpdateFields, map[string]interface{}{FieldSLAHours: 1441})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	update, err := SanitizeUpdate(adminUpdateFields, map[string]interface{}{FieldSLAHours: float64(24)})
	require.NoError(t, err)
	assert.Equal(t, 24, update[FieldSLAHours])

	// JSON numbers with a fractional part are not valid hours.
	_, err = SanitizeUpdate(adminUpdateFields, map[string]interface{}{FieldSLAHours: 24.5})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestSanitizeUpdateCoercesTimestamps(t *testing.T) {
	// JSON delivers dueAt/escalatedAt as RFC3339 strings; the update must
	// store them as timestamps or every later read of the record breaks.
	update, err := SanitizeUpdate(adminUpdateFields, map[string]interface{}{
		FieldDueAt:       "2026-09-05T00:00:00Z",
		FieldEscalatedAt: "2026-09-03T08:30:00+05:30",
	})

	require.NoError(t, err)
	due, ok := update[FieldDueAt].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), due)
	escalated, ok := update[FieldEscalatedAt].(time.Time)
	require.True(t, ok)
	assert.True(t, escalated.Equal(time.Date(2026, 9, 3, 3, 0, 0, 0, time.UTC)))
}

func TestSanitizeUpdateKeepsTypedTimestamps(t *testing.T) {
	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	update, err := SanitizeUpdate(adminUpdateFields, map[string]interface{}{FieldDueAt: due})
	require.NoError(t, err)
	assert.Equal(t, due, update[FieldDueAt])

	update, err = SanitizeUpdate(adminUpdateFields, map[string]interface{}{FieldDueAt: &due})
	require.NoError(t, err)
	assert.Equal(t, due, update[FieldDueAt])
}

func TestSanitizeUpdateRejectsBadTimestamps(t *testing.T) {
	_, err := SanitizeUpdate(adminUpdateFields, map[string]interface{}{FieldDueAt: "next tuesday"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Contains(t, err.Error(), "Invalid due date")

	_, err = SanitizeUpdate(adminUpdateFields, map[string]interface{}{FieldEscalatedAt: 1757030400})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid escalation date")
}

func TestSanitizeUpdateEmptyResult(t *testing.T) {
	update, err := SanitizeUpdate(ownerUpdateFields, map[string]interface{}{
		FieldStatus:   entity.StatusResolved,
		FieldPriority: "high",
	})

	require.NoError(t, err)
	assert.Empty(t, update)
}
