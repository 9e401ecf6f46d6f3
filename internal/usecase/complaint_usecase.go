package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"campusvoice/internal/domain/entity"
	"campusvoice/internal/domain/policy"
	"campusvoice/internal/domain/repository"
	"campusvoice/pkg/errors"
)

type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
	notifier      Notifier
}

func NewComplaintUseCase(
	complaintRepo repository.ComplaintRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *ComplaintUseCase {
	return &ComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		notifier:      notifier,
	}
}

type CreateComplaintInput struct {
	IsAnonymous bool
	Name        string
	Email       string
	Phone       string
	StudentID   string

	Category    string
	Subject     string
	Description string
	Tags        []string

	MediaFiles []string
	VoiceNote  string

	Building   string
	Block      string
	Room       string
	Department string
}

type UpdateComplaintInput struct {
	// Fields is the raw partial-update payload; keys outside the caller's
	// allowed-field set are dropped, not rejected.
	Fields     map[string]interface{}
	Comment    string
	IsInternal bool
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9\-\s]{7,15}$`)
)

// Create validates and stores a new complaint. owner is nil for anonymous
// unauthenticated submissions; when present it is retained even if the
// complaint is marked anonymous, so the submitter can track it.
func (uc *ComplaintUseCase) Create(ctx context.Context, owner *policy.Identity, input CreateComplaintInput) (*entity.Complaint, error) {
	var violations []string
	if !entity.ValidCategory(input.Category) {
		violations = append(violations, "Invalid category")
	}
	if len(strings.TrimSpace(input.Subject)) < 3 {
		violations = append(violations, "Subject is required (min 3 chars)")
	}
	if wordCount(input.Description) < 50 {
		violations = append(violations, "Description must be at least 50 words")
	}
	if !input.IsAnonymous && input.Email == "" {
		violations = append(violations, "Email is required if not anonymous")
	}
	if input.Email != "" && !emailPattern.MatchString(input.Email) {
		violations = append(violations, "Invalid email")
	}
	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		violations = append(violations, "Invalid phone")
	}
	if len(violations) > 0 {
		return nil, errors.Validation(violations)
	}

	now := time.Now()
	complaint := &entity.Complaint{
		IsAnonymous: input.IsAnonymous,
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		StudentID:   input.StudentID,
		Category:    input.Category,
		Subject:     input.Subject,
		Description: input.Description,
		Tags:        input.Tags,
		MediaFiles:  input.MediaFiles,
		VoiceNote:   input.VoiceNote,
		Building:    input.Building,
		Block:       input.Block,
		Room:        input.Room,
		Department:  input.Department,
		Status:      entity.DefaultStatus,
		Urgency:     entity.DefaultUrgency,
		Priority:    entity.DefaultPriority,
		SLAHours:    policy.NormalizeSLAHours(0),
		CreatedAt:   now,
	}
	if owner != nil {
		complaint.OwnerID = owner.ID
	}
	if complaint.IsAnonymous {
		complaint.AnonymousID = uuid.New().String()
	}
	complaint.DueAt = policy.DeriveDueAt(complaint.CreatedAt, complaint.SLAHours, nil)

	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

// List returns the viewer's role-scoped slice of complaints, redacted per
// viewer, along with the limit actually applied.
func (uc *ComplaintUseCase) List(ctx context.Context, viewer policy.Identity, filter policy.ListFilter) ([]*entity.Complaint, int, error) {
	query := policy.BuildListQuery(viewer, filter)

	items, err := uc.complaintRepo.Find(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	presented := make([]*entity.Complaint, len(items))
	for i, item := range items {
		presented[i] = policy.Redact(item, viewer)
	}

	return presented, query.Limit, nil
}

func (uc *ComplaintUseCase) Get(ctx context.Context, viewer policy.Identity, id string) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !policy.CanView(viewer, complaint) {
		return nil, errors.Forbidden("You do not have permission to view this complaint", nil)
	}

	return policy.Redact(complaint, viewer), nil
}

// Update chains permission resolution, assignee normalization, field
// sanitization and the store write, then returns the redacted result.
func (uc *ComplaintUseCase) Update(ctx context.Context, viewer policy.Identity, id string, input UpdateComplaintInput) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload := input.Fields
	if payload == nil {
		payload = map[string]interface{}{}
	}
	if err := uc.normalizeAssignee(ctx, payload); err != nil {
		return nil, err
	}

	perm := policy.ResolveUpdatePermission(viewer, complaint)
	if !perm.Allowed {
		return nil, errors.Forbidden("You do not have permission to update this complaint", nil)
	}

	update, err := policy.SanitizeUpdate(perm.Fields, payload)
	if err != nil {
		return nil, err
	}

	var comment *entity.Comment
	if input.Comment != "" {
		comment = &entity.Comment{
			ID:         uuid.New().String(),
			AuthorID:   viewer.ID,
			Text:       input.Comment,
			IsInternal: input.IsInternal,
			CreatedAt:  time.Now(),
		}
	}

	updated, err := uc.complaintRepo.Update(ctx, id, update, comment)
	if err != nil {
		return nil, err
	}

	uc.notifyUpdated(updated, viewer)

	return policy.Redact(updated, viewer), nil
}

// normalizeAssignee resolves an assignedTo string before the whitelist is
// applied: an email looks up the user id, and a value that is neither an
// email nor an id shape is reinterpreted as assignedDepartment.
func (uc *ComplaintUseCase) normalizeAssignee(ctx context.Context, payload map[string]interface{}) error {
	raw, ok := payload[policy.FieldAssignedTo]
	if !ok {
		return nil
	}
	val, ok := raw.(string)
	if !ok || val == "" {
		return nil
	}

	if strings.Contains(val, "@") {
		user, err := uc.userRepo.GetByEmail(ctx, strings.TrimSpace(val))
		if err != nil || user == nil {
			return errors.UnknownAssignee(val)
		}
		payload[policy.FieldAssignedTo] = user.ID
		return nil
	}
	if !looksLikeUserID(val) {
		payload[policy.FieldAssignedDepartment] = val
		delete(payload, policy.FieldAssignedTo)
	}
	return nil
}

// Auth provider uids are opaque identifiers of at least 20 url-safe chars;
// anything shorter or with other punctuation is a department name.
func looksLikeUserID(v string) bool {
	if len(v) < 20 {
		return false
	}
	for _, r := range v {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func (uc *ComplaintUseCase) notifyUpdated(c *entity.Complaint, actor policy.Identity) {
	if uc.notifier == nil {
		return
	}
	event := map[string]interface{}{
		"type":         "complaint_updated",
		"complaint_id": c.ID,
		"subject":      c.Subject,
		"status":       c.Status,
	}
	if c.OwnerID != "" && c.OwnerID != actor.ID {
		uc.notifier.NotifyUser(c.OwnerID, event)
	}
	if c.AssignedTo != "" && c.AssignedTo != actor.ID && c.AssignedTo != c.OwnerID {
		uc.notifier.NotifyUser(c.AssignedTo, event)
	}
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
