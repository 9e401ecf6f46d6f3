package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campusvoice/internal/domain/entity"
)

func TestCanView(t *testing.T) {
	complaint := &entity.Complaint{
		ID:         "c1",
		OwnerID:    "student-1",
		Department: "Maintenance",
		AssignedTo: "faculty-9",
	}

	tests := []struct {
		name   string
		viewer Identity
		want   bool
	}{
		{"admin sees everything", Identity{ID: "x", Role: entity.RoleAdmin}, true},
		{"owner sees own", Identity{ID: "student-1", Role: entity.RoleStudent}, true},
		{"head of same department", Identity{ID: "h1", Role: entity.RoleHead, Department: "Maintenance"}, true},
		{"head of other department", Identity{ID: "h2", Role: entity.RoleHead, Department: "Security"}, false},
		{"faculty of same department", Identity{ID: "f1", Role: entity.RoleFaculty, Department: "Maintenance"}, true},
		{"assignee outside department", Identity{ID: "faculty-9", Role: entity.RoleFaculty, Department: "Library"}, true},
		{"unrelated student", Identity{ID: "student-2", Role: entity.RoleStudent}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.viewer, complaint))
		})
	}
}

func TestCanViewAssignedDepartment(t *testing.T) {
	complaint := &entity.Complaint{
		ID:                 "c2",
		OwnerID:            "student-1",
		Department:         "Mess",
		AssignedDepartment: "Maintenance",
	}

	head := Identity{ID: "h3", Role: entity.RoleHead, Department: "Maintenance"}
	assert.True(t, CanView(head, complaint))

	// A head with no department gets no department-based access.
	blank := Identity{ID: "h4", Role: entity.RoleHead}
	assert.False(t, CanView(blank, complaint))
}

func TestResolveUpdatePermissionAdmin(t *testing.T) {
	perm := ResolveUpdatePermission(Identity{ID: "a1", Role: entity.RoleAdmin}, &entity.Complaint{OwnerID: "s1"})

	assert.True(t, perm.Allowed)
	assert.Contains(t, perm.Fields, FieldSLAHours)
	assert.Contains(t, perm.Fields, FieldDueAt)
	assert.Contains(t, perm.Fields, FieldAssignedTo)
	assert.NotContains(t, perm.Fields, FieldDescription)
}

func TestResolveUpdatePermissionHead(t *testing.T) {
	complaint := &entity.Complaint{OwnerID: "s1", Department: "Hostel"}

	perm := ResolveUpdatePermission(Identity{ID: "h1", Role: entity.RoleHead, Department: "Hostel"}, complaint)
	assert.True(t, perm.Allowed)
	assert.Contains(t, perm.Fields, FieldAssignedDepartment)
	assert.NotContains(t, perm.Fields, FieldSLAHours)
	assert.NotContains(t, perm.Fields, FieldDueAt)

	denied := ResolveUpdatePermission(Identity{ID: "h2", Role: entity.RoleHead, Department: "Mess"}, complaint)
	assert.False(t, denied.Allowed)
	assert.Empty(t, denied.Fields)
}

func TestResolveUpdatePermissionFaculty(t *testing.T) {
	complaint := &entity.Complaint{OwnerID: "s1", AssignedTo: "f1", Department: "Maintenance"}

	perm := ResolveUpdatePermission(Identity{ID: "f1", Role: entity.RoleFaculty, Department: "Maintenance"}, complaint)
	assert.True(t, perm.Allowed)
	assert.ElementsMatch(t, []string{FieldStatus, FieldUrgency, FieldPriority}, perm.Fields)

	// Department match alone is a view grant, not an update grant.
	denied := ResolveUpdatePermission(Identity{ID: "f2", Role: entity.RoleFaculty, Department: "Maintenance"}, complaint)
	assert.False(t, denied.Allowed)
}

func TestResolveUpdatePermissionOwner(t *testing.T) {
	complaint := &entity.Complaint{OwnerID: "s1"}

	perm := ResolveUpdatePermission(Identity{ID: "s1", Role: entity.RoleStudent}, complaint)
	assert.True(t, perm.Allowed)
	assert.ElementsMatch(t, []string{FieldDescription, FieldTags}, perm.Fields)

	denied := ResolveUpdatePermission(Identity{ID: "s2", Role: entity.RoleStudent}, complaint)
	assert.False(t, denied.Allowed)
}

func TestResolveUpdatePermissionFacultyOwnerNotAssigned(t *testing.T) {
	// The role branch wins: a faculty member who filed the complaint but is
	// not assigned to it cannot update it, not even description or tags.
	complaint := &entity.Complaint{OwnerID: "f1", AssignedTo: "f2"}

	perm := ResolveUpdatePermission(Identity{ID: "f1", Role: entity.RoleFaculty, Department: "Other"}, complaint)
	assert.False(t, perm.Allowed)
	assert.Empty(t, perm.Fields)
}
