package entity

import (
	"time"
)

const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleHead    = "head"
	RoleAdmin   = "admin"
)

// DefaultDepartment is assigned at registration; department changes happen
// on profile update or out-of-band seeding.
const DefaultDepartment = "General"

var Roles = []string{RoleStudent, RoleFaculty, RoleHead, RoleAdmin}

var Departments = []string{
	"IT Department",
	"Maintenance",
	"Security",
	"Mess",
	"Hostel",
	"Library",
	"Sports",
	"Transport",
	"Finance",
	"Academic",
	DefaultDepartment,
}

type User struct {
	ID         string `json:"id" firestore:"id"`
	Email      string `json:"email" firestore:"email"`
	Name       string `json:"name,omitempty" firestore:"name,omitempty"`
	Role       string `json:"role" firestore:"role"`
	Department string `json:"department" firestore:"department"`
	StudentID  string `json:"student_id,omitempty" firestore:"studentId,omitempty"`
	Phone      string `json:"phone,omitempty" firestore:"phone,omitempty"`
	IsActive   bool   `json:"is_active" firestore:"isActive"`

	LastLogin time.Time `json:"last_login,omitempty" firestore:"lastLogin,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

func ValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}
