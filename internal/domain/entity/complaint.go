package entity

import (
	"time"
)

const (
	StatusSubmitted  = "submitted"
	StatusPending    = "pending"
	StatusInReview   = "in_review"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusRejected   = "rejected"
	StatusEscalated  = "escalated"
)

const (
	DefaultStatus   = StatusPending
	DefaultUrgency  = "medium"
	DefaultPriority = "medium"

	DefaultSLAHours = 72
	MinSLAHours     = 1
	MaxSLAHours     = 1440
)

// AnonymousDisplayName replaces the submitter's name when an anonymous
// complaint is presented to a viewer who is neither admin nor the owner.
const AnonymousDisplayName = "Anonymous User"

var (
	Categories = []string{"Infrastructure", "Faculty", "Harassment", "Hostel", "Mess", "Admin", "Other"}
	Statuses   = []string{StatusSubmitted, StatusPending, StatusInReview, StatusInProgress, StatusResolved, StatusRejected, StatusEscalated}
	Urgencies  = []string{"low", "medium", "high", "urgent"}
	Priorities = []string{"low", "medium", "high", "critical"}
)

// Comment is an append-only entry on a complaint. Internal comments are
// hidden from viewers outside admin/head unless they authored them.
type Comment struct {
	ID         string    `json:"id" firestore:"id"`
	AuthorID   string    `json:"author_id" firestore:"authorId"`
	Text       string    `json:"text" firestore:"text"`
	IsInternal bool      `json:"is_internal" firestore:"isInternal"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}

type Complaint struct {
	ID string `json:"id" firestore:"id"`

	// OwnerID is kept even for anonymous complaints so the submitter can
	// track their own record; presentation-layer redaction hides it.
	OwnerID     string `json:"owner_id,omitempty" firestore:"ownerId"`
	IsAnonymous bool   `json:"is_anonymous" firestore:"isAnonymous"`
	AnonymousID string `json:"anonymous_id,omitempty" firestore:"anonymousId,omitempty"`

	Name      string `json:"name,omitempty" firestore:"name,omitempty"`
	Email     string `json:"email,omitempty" firestore:"email,omitempty"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	StudentID string `json:"student_id,omitempty" firestore:"studentId,omitempty"`

	Category    string   `json:"category" firestore:"category"`
	Subject     string   `json:"subject" firestore:"subject"`
	Description string   `json:"description" firestore:"description"`
	Tags        []string `json:"tags,omitempty" firestore:"tags,omitempty"`

	MediaFiles []string `json:"media_files,omitempty" firestore:"mediaFiles,omitempty"`
	VoiceNote  string   `json:"voice_note,omitempty" firestore:"voiceNote,omitempty"`

	Building   string `json:"building,omitempty" firestore:"building,omitempty"`
	Block      string `json:"block,omitempty" firestore:"block,omitempty"`
	Room       string `json:"room,omitempty" firestore:"room,omitempty"`
	Department string `json:"department,omitempty" firestore:"department"`

	// AssignedTo references a user id; AssignedDepartment is the string
	// alternative when work is routed to a department rather than a person.
	AssignedTo         string `json:"assigned_to,omitempty" firestore:"assignedTo"`
	AssignedDepartment string `json:"assigned_department,omitempty" firestore:"assignedDepartment"`

	Status   string `json:"status" firestore:"status"`
	Urgency  string `json:"urgency" firestore:"urgency"`
	Priority string `json:"priority" firestore:"priority"`

	SLAHours int        `json:"sla_hours" firestore:"slaHours"`
	DueAt    *time.Time `json:"due_at,omitempty" firestore:"dueAt"`

	EscalatedAt      *time.Time `json:"escalated_at,omitempty" firestore:"escalatedAt"`
	EscalatedTo      string     `json:"escalated_to,omitempty" firestore:"escalatedTo,omitempty"`
	EscalationReason string     `json:"escalation_reason,omitempty" firestore:"escalationReason,omitempty"`

	Comments []Comment `json:"comments,omitempty" firestore:"comments"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidCategory(v string) bool { return contains(Categories, v) }
func ValidStatus(v string) bool   { return contains(Statuses, v) }
func ValidUrgency(v string) bool  { return contains(Urgencies, v) }
func ValidPriority(v string) bool { return contains(Priorities, v) }

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// DisplayName mirrors what the presentation layer shows for the submitter.
func (c *Complaint) DisplayName() string {
	if c.IsAnonymous {
		return AnonymousDisplayName
	}
	if c.Name != "" {
		return c.Name
	}
	if c.Email != "" {
		return c.Email
	}
	return "Unknown User"
}
