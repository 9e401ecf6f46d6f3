package policy

import (
	"time"

	"campusvoice/internal/domain/entity"
)

// Op is a comparison operator in a query clause. The set matches what the
// complaint store supports on single fields.
type Op string

const (
	OpEq    Op = "=="
	OpNotEq Op = "!="
	OpGte   Op = ">="
	OpLte   Op = "<="
)

type Clause struct {
	Field string
	Op    Op
	Value interface{}
}

// ComplaintQuery is the typed intermediate representation handed to the
// store. Must clauses AND together; Should clauses form a single OR group
// that is itself ANDed with Must. Results are ordered createdAt descending.
type ComplaintQuery struct {
	Must   []Clause
	Should []Clause
	Limit  int
}

// ListFilter carries the caller-supplied filters layered on top of the
// role scope. Zero values mean "not set".
type ListFilter struct {
	ID         string
	From       *time.Time
	To         *time.Time
	Department string
	Status     string
	Urgency    string
	Priority   string
	Assigned   *bool
	Limit      int
}

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
	MaxAdminLimit    = 10000
)

// ClampLimit silently bounds a requested result count by role. A zero or
// negative request falls back to the default.
func ClampLimit(role string, requested int) int {
	if requested <= 0 {
		requested = DefaultListLimit
	}
	max := MaxListLimit
	if role == entity.RoleAdmin {
		max = MaxAdminLimit
	}
	if requested > max {
		return max
	}
	return requested
}

// BuildListQuery translates (viewer, filters) into the scoped query. The
// role scope comes first; user filters are AND-layered on top so they can
// only narrow what the role already permits.
func BuildListQuery(viewer Identity, f ListFilter) ComplaintQuery {
	q := ComplaintQuery{Limit: ClampLimit(viewer.Role, f.Limit)}

	switch viewer.Role {
	case entity.RoleAdmin:
		// Unrestricted.
	case entity.RoleHead:
		q.Should = []Clause{
			{Field: "department", Op: OpEq, Value: viewer.Department},
			{Field: FieldAssignedDepartment, Op: OpEq, Value: viewer.Department},
			{Field: FieldAssignedTo, Op: OpEq, Value: viewer.ID},
		}
	case entity.RoleFaculty:
		q.Should = []Clause{
			{Field: FieldAssignedTo, Op: OpEq, Value: viewer.ID},
			{Field: "department", Op: OpEq, Value: viewer.Department},
		}
	default:
		q.Must = append(q.Must, Clause{Field: "ownerId", Op: OpEq, Value: viewer.ID})
	}

	if f.ID != "" {
		q.Must = append(q.Must, Clause{Field: "id", Op: OpEq, Value: f.ID})
	}
	if f.From != nil {
		q.Must = append(q.Must, Clause{Field: "createdAt", Op: OpGte, Value: *f.From})
	}
	if f.To != nil {
		q.Must = append(q.Must, Clause{Field: "createdAt", Op: OpLte, Value: *f.To})
	}
	if f.Department != "" {
		q.Must = append(q.Must, Clause{Field: "department", Op: OpEq, Value: f.Department})
	}
	if f.Status != "" {
		q.Must = append(q.Must, Clause{Field: FieldStatus, Op: OpEq, Value: f.Status})
	}
	if f.Urgency != "" {
		q.Must = append(q.Must, Clause{Field: FieldUrgency, Op: OpEq, Value: f.Urgency})
	}
	if f.Priority != "" {
		q.Must = append(q.Must, Clause{Field: FieldPriority, Op: OpEq, Value: f.Priority})
	}
	if f.Assigned != nil {
		// An unassigned complaint stores an empty assignedTo. Both branches
		// AND with the role scope; the unassigned filter never widens it.
		if *f.Assigned {
			q.Must = append(q.Must, Clause{Field: FieldAssignedTo, Op: OpNotEq, Value: ""})
		} else {
			q.Must = append(q.Must, Clause{Field: FieldAssignedTo, Op: OpEq, Value: ""})
		}
	}

	return q
}
