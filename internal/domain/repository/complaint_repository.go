package repository

import (
	"context"

	"campusvoice/internal/domain/entity"
	"campusvoice/internal/domain/policy"
)

// ComplaintRepository is the store collaborator; single-document atomic
// read-modify-write, last write wins. Update sets only the named fields and
// optionally appends one comment; it returns the updated record.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	GetByID(ctx context.Context, id string) (*entity.Complaint, error)
	Find(ctx context.Context, query policy.ComplaintQuery) ([]*entity.Complaint, error)
	Update(ctx context.Context, id string, fields map[string]interface{}, comment *entity.Comment) (*entity.Complaint, error)
}
