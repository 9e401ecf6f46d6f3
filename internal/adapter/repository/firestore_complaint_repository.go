package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"campusvoice/internal/domain/entity"
	"campusvoice/internal/domain/policy"
	"campusvoice/internal/domain/repository"
	"campusvoice/pkg/errors"
)

type firestoreComplaintRepository struct {
	client *firestore.Client
}

func NewFirestoreComplaintRepository(client *firestore.Client) repository.ComplaintRepository {
	return &firestoreComplaintRepository{
		client: client,
	}
}

func (r *firestoreComplaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	if complaint.ID == "" {
		doc := r.client.Collection("complaints").NewDoc()
		complaint.ID = doc.ID
	}

	now := time.Now()
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = now
	}
	complaint.UpdatedAt = now

	_, err := r.client.Collection("complaints").Doc(complaint.ID).Set(ctx, complaint)
	if err != nil {
		return errors.Internal("Failed to create complaint", err)
	}

	return nil
}

func (r *firestoreComplaintRepository) GetByID(ctx context.Context, id string) (*entity.Complaint, error) {
	doc, err := r.client.Collection("complaints").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Complaint", err)
		}
		return nil, errors.Internal("Failed to get complaint", err)
	}

	var complaint entity.Complaint
	if err := doc.DataTo(&complaint); err != nil {
		return nil, errors.Internal("Failed to parse complaint data", err)
	}

	return &complaint, nil
}

// Find translates the scoped query IR into a Firestore composite filter.
// Must clauses AND together; a non-empty Should group becomes one OR filter
// ANDed with the rest.
func (r *firestoreComplaintRepository) Find(ctx context.Context, q policy.ComplaintQuery) ([]*entity.Complaint, error) {
	query := r.client.Collection("complaints").Query

	filters := make([]firestore.EntityFilter, 0, len(q.Must)+1)
	for _, clause := range q.Must {
		filters = append(filters, propertyFilter(clause))
	}
	if len(q.Should) > 0 {
		should := make([]firestore.EntityFilter, 0, len(q.Should))
		for _, clause := range q.Should {
			should = append(should, propertyFilter(clause))
		}
		filters = append(filters, firestore.OrFilter{Filters: should})
	}
	if len(filters) > 0 {
		query = query.WhereEntity(firestore.AndFilter{Filters: filters})
	}

	query = query.OrderBy("createdAt", firestore.Desc)
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	var complaints []*entity.Complaint
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate complaints", err)
		}
		var complaint entity.Complaint
		if err := doc.DataTo(&complaint); err != nil {
			return nil, errors.Internal("Failed to parse complaint data", err)
		}
		complaints = append(complaints, &complaint)
	}

	return complaints, nil
}

func propertyFilter(clause policy.Clause) firestore.PropertyFilter {
	return firestore.PropertyFilter{
		Path:     clause.Field,
		Operator: string(clause.Op),
		Value:    clause.Value,
	}
}

func (r *firestoreComplaintRepository) Update(ctx context.Context, id string, fields map[string]interface{}, comment *entity.Comment) (*entity.Complaint, error) {
	updates := make([]firestore.Update, 0, len(fields)+2)
	for field, value := range fields {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}
	if comment != nil {
		updates = append(updates, firestore.Update{Path: "comments", Value: firestore.ArrayUnion(*comment)})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	_, err := r.client.Collection("complaints").Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Complaint", err)
		}
		return nil, errors.Internal("Failed to update complaint", err)
	}

	return r.GetByID(ctx, id)
}
