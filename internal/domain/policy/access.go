package policy

import (
	"campusvoice/internal/domain/entity"
)

// Identity is the authenticated actor snapshot every decision takes as an
// explicit input. It is hydrated by the auth middleware from the user store
// so role and department are always current.
type Identity struct {
	ID         string
	Role       string
	Department string
	Email      string
}

// Complaint field names as stored; these double as update-whitelist entries.
const (
	FieldStatus             = "status"
	FieldAssignedTo         = "assignedTo"
	FieldUrgency            = "urgency"
	FieldPriority           = "priority"
	FieldSLAHours           = "slaHours"
	FieldDueAt              = "dueAt"
	FieldAssignedDepartment = "assignedDepartment"
	FieldEscalatedAt        = "escalatedAt"
	FieldEscalatedTo        = "escalatedTo"
	FieldEscalationReason   = "escalationReason"
	FieldDescription        = "description"
	FieldTags               = "tags"
)

// UpdatePermission is the outcome of ResolveUpdatePermission: whether the
// caller may update at all, and which fields their role may touch.
type UpdatePermission struct {
	Allowed bool
	Fields  []string
}

var (
	adminUpdateFields = []string{
		FieldStatus, FieldAssignedTo, FieldUrgency, FieldPriority,
		FieldSLAHours, FieldDueAt, FieldAssignedDepartment,
		FieldEscalatedAt, FieldEscalatedTo, FieldEscalationReason,
	}
	headUpdateFields = []string{
		FieldStatus, FieldAssignedTo, FieldUrgency, FieldPriority,
		FieldAssignedDepartment,
		FieldEscalatedAt, FieldEscalatedTo, FieldEscalationReason,
	}
	facultyUpdateFields = []string{FieldStatus, FieldUrgency, FieldPriority}
	ownerUpdateFields   = []string{FieldDescription, FieldTags}
)

// CanView reports whether the viewer may see the complaint at all. Scoping
// (which records a list query returns) must never be wider than this.
func CanView(viewer Identity, c *entity.Complaint) bool {
	if viewer.Role == entity.RoleAdmin {
		return true
	}
	if c.OwnerID != "" && c.OwnerID == viewer.ID {
		return true
	}
	if (viewer.Role == entity.RoleHead || viewer.Role == entity.RoleFaculty) &&
		viewer.Department != "" &&
		(c.Department == viewer.Department || c.AssignedDepartment == viewer.Department) {
		return true
	}
	if c.AssignedTo != "" && c.AssignedTo == viewer.ID {
		return true
	}
	return false
}

// ResolveUpdatePermission evaluates the role branches in priority order;
// the first matching branch wins and its field set is NOT merged with any
// other. A faculty member who owns a complaint but is not assigned to it
// gets nothing: the owner fallback applies only to roles outside
// admin/head/faculty.
func ResolveUpdatePermission(viewer Identity, c *entity.Complaint) UpdatePermission {
	switch viewer.Role {
	case entity.RoleAdmin:
		return UpdatePermission{Allowed: true, Fields: adminUpdateFields}

	case entity.RoleHead:
		if viewer.Department != "" &&
			(c.Department == viewer.Department || c.AssignedDepartment == viewer.Department) {
			return UpdatePermission{Allowed: true, Fields: headUpdateFields}
		}

	case entity.RoleFaculty:
		if c.AssignedTo != "" && c.AssignedTo == viewer.ID {
			return UpdatePermission{Allowed: true, Fields: facultyUpdateFields}
		}

	default:
		if c.OwnerID != "" && c.OwnerID == viewer.ID {
			return UpdatePermission{Allowed: true, Fields: ownerUpdateFields}
		}
	}
	return UpdatePermission{}
}
