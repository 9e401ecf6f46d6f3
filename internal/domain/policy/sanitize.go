package policy

import (
	"time"

	"campusvoice/internal/domain/entity"
	"campusvoice/pkg/errors"
)

// SanitizeUpdate copies into the returned update only the keys present in
// both the raw payload and the allowed-field whitelist, validating
// enumerated values and SLA bounds as it goes. Violations accumulate and
// reject the whole update; nothing is partially applied.
func SanitizeUpdate(allowed []string, payload map[string]interface{}) (map[string]interface{}, error) {
	update := make(map[string]interface{})
	for _, field := range allowed {
		if value, ok := payload[field]; ok {
			update[field] = value
		}
	}

	var violations []string
	if v, ok := update[FieldStatus]; ok {
		if s, ok := v.(string); !ok || !entity.ValidStatus(s) {
			violations = append(violations, "Invalid status")
		}
	}
	if v, ok := update[FieldUrgency]; ok {
		if s, ok := v.(string); !ok || !entity.ValidUrgency(s) {
			violations = append(violations, "Invalid urgency")
		}
	}
	if v, ok := update[FieldPriority]; ok {
		if s, ok := v.(string); !ok || !entity.ValidPriority(s) {
			violations = append(violations, "Invalid priority")
		}
	}
	if v, ok := update[FieldSLAHours]; ok {
		hours, numeric := asInt(v)
		if !numeric || !ValidSLAHours(hours) {
			violations = append(violations, "Invalid SLA hours")
		} else {
			update[FieldSLAHours] = hours
		}
	}
	if v, ok := update[FieldDueAt]; ok {
		if ts, valid := asTime(v); valid {
			update[FieldDueAt] = ts
		} else {
			violations = append(violations, "Invalid due date")
		}
	}
	if v, ok := update[FieldEscalatedAt]; ok {
		if ts, valid := asTime(v); valid {
			update[FieldEscalatedAt] = ts
		} else {
			violations = append(violations, "Invalid escalation date")
		}
	}
	if len(violations) > 0 {
		return nil, errors.Validation(violations)
	}

	return update, nil
}

// asTime coerces timestamp fields to the stored type. JSON payloads carry
// RFC3339 strings; anything else stored as-is would make the record
// unreadable on the next DataTo.
func asTime(v interface{}) (time.Time, bool) {
	switch ts := v.(type) {
	case time.Time:
		return ts, true
	case *time.Time:
		if ts == nil {
			return time.Time{}, false
		}
		return *ts, true
	case string:
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}

// asInt accepts the numeric shapes a JSON payload can produce.
func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
