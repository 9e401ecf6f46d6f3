package usecase

import (
	"context"
	"time"

	"campusvoice/internal/domain/entity"
	"campusvoice/internal/domain/policy"
	"campusvoice/pkg/errors"
)

// ExportRow is the flat full-field record handed to the report renderer.
// Export is admin-only, so rows skip presentation redaction.
type ExportRow struct {
	ComplaintID string `json:"complaintId"`
	Subject     string `json:"subject"`
	Category    string `json:"category"`
	Department  string `json:"department"`
	Status      string `json:"status"`
	Urgency     string `json:"urgency"`
	Priority    string `json:"priority"`
	AssignedTo  string `json:"assignedTo"`
	CreatedAt   string `json:"createdAt"`
	DueAt       string `json:"dueAt"`
	SLAHours    int    `json:"slaHours"`
	Description string `json:"description"`
	StudentID   string `json:"studentId"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Building    string `json:"building"`
	Room        string `json:"room"`
}

// Export reuses the list scoping (admin scope is unrestricted) with the
// export cap. Contact fields blank on the complaint fall back to the owner
// record so reports are complete.
func (uc *ComplaintUseCase) Export(ctx context.Context, viewer policy.Identity, filter policy.ListFilter) ([]ExportRow, error) {
	if viewer.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Admin access required", nil)
	}

	filter.Limit = policy.MaxAdminLimit
	query := policy.BuildListQuery(viewer, filter)

	items, err := uc.complaintRepo.Find(ctx, query)
	if err != nil {
		return nil, err
	}

	users := map[string]*entity.User{}
	lookup := func(id string) *entity.User {
		if id == "" {
			return nil
		}
		if u, ok := users[id]; ok {
			return u
		}
		u, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			u = nil
		}
		users[id] = u
		return u
	}

	rows := make([]ExportRow, 0, len(items))
	for _, c := range items {
		row := ExportRow{
			ComplaintID: c.ID,
			Subject:     c.Subject,
			Category:    c.Category,
			Department:  c.Department,
			Status:      c.Status,
			Urgency:     c.Urgency,
			Priority:    c.Priority,
			AssignedTo:  "Unassigned",
			CreatedAt:   c.CreatedAt.Format(time.RFC3339),
			SLAHours:    c.SLAHours,
			Description: c.Description,
			StudentID:   c.StudentID,
			Email:       c.Email,
			Phone:       c.Phone,
			Building:    c.Building,
			Room:        c.Room,
		}
		if row.Department == "" {
			row.Department = "Unassigned"
		}
		if c.DueAt != nil {
			row.DueAt = c.DueAt.Format(time.RFC3339)
		}
		if assignee := lookup(c.AssignedTo); assignee != nil {
			if assignee.Email != "" {
				row.AssignedTo = assignee.Email
			} else if assignee.Name != "" {
				row.AssignedTo = assignee.Name
			} else {
				row.AssignedTo = assignee.ID
			}
		} else if c.AssignedTo != "" {
			row.AssignedTo = c.AssignedTo
		}
		if row.Email == "" || row.Phone == "" || row.StudentID == "" {
			if owner := lookup(c.OwnerID); owner != nil {
				if row.Email == "" {
					row.Email = owner.Email
				}
				if row.Phone == "" {
					row.Phone = owner.Phone
				}
				if row.StudentID == "" {
					row.StudentID = owner.StudentID
				}
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}
