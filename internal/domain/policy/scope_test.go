package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/domain/entity"
)

// matchClause evaluates one clause against an in-memory complaint, mirroring
// how the store applies the query. Only the fields the scope builder emits
// are handled.
func matchClause(c *entity.Complaint, cl Clause) bool {
	var actual interface{}
	switch cl.Field {
	case "id":
		actual = c.ID
	case "ownerId":
		actual = c.OwnerID
	case "department":
		actual = c.Department
	case FieldAssignedDepartment:
		actual = c.AssignedDepartment
	case FieldAssignedTo:
		actual = c.AssignedTo
	case FieldStatus:
		actual = c.Status
	case FieldUrgency:
		actual = c.Urgency
	case FieldPriority:
		actual = c.Priority
	case "createdAt":
		bound := cl.Value.(time.Time)
		switch cl.Op {
		case OpGte:
			return !c.CreatedAt.Before(bound)
		case OpLte:
			return !c.CreatedAt.After(bound)
		}
		return false
	default:
		return false
	}

	switch cl.Op {
	case OpEq:
		return actual == cl.Value
	case OpNotEq:
		return actual != cl.Value
	}
	return false
}

func matchQuery(c *entity.Complaint, q ComplaintQuery) bool {
	for _, cl := range q.Must {
		if !matchClause(c, cl) {
			return false
		}
	}
	if len(q.Should) > 0 {
		hit := false
		for _, cl := range q.Should {
			if matchClause(c, cl) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func TestBuildListQueryAdmin(t *testing.T) {
	q := BuildListQuery(Identity{ID: "a1", Role: entity.RoleAdmin}, ListFilter{})

	assert.Empty(t, q.Must)
	assert.Empty(t, q.Should)
	assert.Equal(t, DefaultListLimit, q.Limit)
}

func TestBuildListQueryStudent(t *testing.T) {
	q := BuildListQuery(Identity{ID: "s1", Role: entity.RoleStudent}, ListFilter{})

	require.Len(t, q.Must, 1)
	assert.Equal(t, Clause{Field: "ownerId", Op: OpEq, Value: "s1"}, q.Must[0])
}

func TestBuildListQueryHead(t *testing.T) {
	q := BuildListQuery(Identity{ID: "h1", Role: entity.RoleHead, Department: "Hostel"}, ListFilter{})

	require.Len(t, q.Should, 3)
	assert.Contains(t, q.Should, Clause{Field: "department", Op: OpEq, Value: "Hostel"})
	assert.Contains(t, q.Should, Clause{Field: FieldAssignedDepartment, Op: OpEq, Value: "Hostel"})
	assert.Contains(t, q.Should, Clause{Field: FieldAssignedTo, Op: OpEq, Value: "h1"})
}

func TestHeadScopeMembership(t *testing.T) {
	head := Identity{ID: "h1", Role: entity.RoleHead, Department: "Hostel"}
	q := BuildListQuery(head, ListFilter{})

	ownDept := &entity.Complaint{ID: "c1", Department: "Hostel"}
	assignedToHead := &entity.Complaint{ID: "c2", Department: "Mess", AssignedTo: "h1"}
	assignedElsewhere := &entity.Complaint{ID: "c3", Department: "Mess", AssignedTo: "f2"}

	assert.True(t, matchQuery(ownDept, q))
	assert.True(t, matchQuery(assignedToHead, q))
	assert.False(t, matchQuery(assignedElsewhere, q))
}

func TestBuildListQueryFaculty(t *testing.T) {
	q := BuildListQuery(Identity{ID: "f1", Role: entity.RoleFaculty, Department: "Maintenance"}, ListFilter{})

	require.Len(t, q.Should, 2)
	assert.Contains(t, q.Should, Clause{Field: FieldAssignedTo, Op: OpEq, Value: "f1"})
	assert.Contains(t, q.Should, Clause{Field: "department", Op: OpEq, Value: "Maintenance"})
}

func TestBuildListQueryFacultyWithStatusFilter(t *testing.T) {
	// Caller filters narrow the role scope; they never replace it.
	q := BuildListQuery(
		Identity{ID: "f1", Role: entity.RoleFaculty, Department: "Maintenance"},
		ListFilter{Status: entity.StatusPending},
	)

	require.Len(t, q.Should, 2)
	require.Len(t, q.Must, 1)
	assert.Equal(t, Clause{Field: FieldStatus, Op: OpEq, Value: entity.StatusPending}, q.Must[0])

	matching := &entity.Complaint{ID: "c1", OwnerID: "s1", Department: "Maintenance", Status: entity.StatusPending}
	outOfScope := &entity.Complaint{ID: "c2", OwnerID: "s1", Department: "Mess", Status: entity.StatusPending}
	wrongStatus := &entity.Complaint{ID: "c3", OwnerID: "s1", Department: "Maintenance", Status: entity.StatusResolved}

	assert.True(t, matchQuery(matching, q))
	assert.False(t, matchQuery(outOfScope, q))
	assert.False(t, matchQuery(wrongStatus, q))
}

func TestBuildListQueryUnassignedFilterKeepsScope(t *testing.T) {
	// assigned=false must stay inside the head's scope rather than turning
	// into a global unassigned listing.
	assigned := false
	q := BuildListQuery(
		Identity{ID: "h1", Role: entity.RoleHead, Department: "Hostel"},
		ListFilter{Assigned: &assigned},
	)

	require.Len(t, q.Should, 3)
	require.Len(t, q.Must, 1)
	assert.Equal(t, Clause{Field: FieldAssignedTo, Op: OpEq, Value: ""}, q.Must[0])

	inScope := &entity.Complaint{ID: "c1", Department: "Hostel"}
	otherDept := &entity.Complaint{ID: "c2", Department: "Maintenance"}

	assert.True(t, matchQuery(inScope, q))
	assert.False(t, matchQuery(otherDept, q))
}

func TestBuildListQueryAssignedFilter(t *testing.T) {
	assigned := true
	q := BuildListQuery(Identity{ID: "a1", Role: entity.RoleAdmin}, ListFilter{Assigned: &assigned})

	require.Len(t, q.Must, 1)
	assert.Equal(t, Clause{Field: FieldAssignedTo, Op: OpNotEq, Value: ""}, q.Must[0])

	assert.True(t, matchQuery(&entity.Complaint{AssignedTo: "f1"}, q))
	assert.False(t, matchQuery(&entity.Complaint{}, q))
}

func TestBuildListQueryDateRange(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	q := BuildListQuery(Identity{ID: "a1", Role: entity.RoleAdmin}, ListFilter{From: &from, To: &to})

	inside := &entity.Complaint{CreatedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)}
	before := &entity.Complaint{CreatedAt: time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)}
	after := &entity.Complaint{CreatedAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)}

	assert.True(t, matchQuery(inside, q))
	assert.False(t, matchQuery(before, q))
	assert.False(t, matchQuery(after, q))
}

func TestClampLimit(t *testing.T) {
	tests := []struct {
		role      string
		requested int
		want      int
	}{
		{entity.RoleStudent, 0, DefaultListLimit},
		{entity.RoleStudent, -5, DefaultListLimit},
		{entity.RoleStudent, 50, 50},
		{entity.RoleFaculty, 5000, MaxListLimit},
		{entity.RoleHead, MaxListLimit, MaxListLimit},
		{entity.RoleAdmin, 5000, 5000},
		{entity.RoleAdmin, 50000, MaxAdminLimit},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampLimit(tt.role, tt.requested), "role=%s requested=%d", tt.role, tt.requested)
	}
}

// TestScopeNeverWiderThanCanView checks the scoping soundness contract on a
// small corpus: anything a role scope admits must also pass CanView for the
// same viewer.
func TestScopeNeverWiderThanCanView(t *testing.T) {
	viewers := []Identity{
		{ID: "s1", Role: entity.RoleStudent},
		{ID: "s2", Role: entity.RoleStudent},
		{ID: "f1", Role: entity.RoleFaculty, Department: "Maintenance"},
		{ID: "h1", Role: entity.RoleHead, Department: "Hostel"},
		{ID: "a1", Role: entity.RoleAdmin},
	}
	corpus := []*entity.Complaint{
		{ID: "c1", OwnerID: "s1", Department: "Maintenance"},
		{ID: "c2", OwnerID: "s2", Department: "Hostel"},
		{ID: "c3", OwnerID: "s1", Department: "Mess", AssignedTo: "f1"},
		{ID: "c4", OwnerID: "s2", Department: "Maintenance", AssignedDepartment: "Hostel"},
		{ID: "c5", OwnerID: "s2", Department: "Mess"},
	}

	for _, viewer := range viewers {
		q := BuildListQuery(viewer, ListFilter{})
		for _, c := range corpus {
			if matchQuery(c, q) {
				assert.True(t, CanView(viewer, c),
					"viewer %s admitted to %s by scope but denied by CanView", viewer.ID, c.ID)
			}
		}
	}
}
