package policy

import (
	"campusvoice/internal/domain/entity"
)

// Redact produces the presented copy of a complaint for a viewer the
// scoping layer has already admitted. The stored record is never mutated.
func Redact(c *entity.Complaint, viewer Identity) *entity.Complaint {
	out := *c

	if c.IsAnonymous && viewer.Role != entity.RoleAdmin && viewer.ID != c.OwnerID {
		out.OwnerID = ""
		out.Name = entity.AnonymousDisplayName
		out.Email = ""
		out.Phone = ""
		out.StudentID = ""
	}

	if viewer.Role == entity.RoleAdmin || viewer.Role == entity.RoleHead {
		out.Comments = append([]entity.Comment(nil), c.Comments...)
		return &out
	}

	visible := make([]entity.Comment, 0, len(c.Comments))
	for _, cm := range c.Comments {
		if !cm.IsInternal || cm.AuthorID == viewer.ID {
			visible = append(visible, cm)
		}
	}
	out.Comments = visible
	return &out
}
