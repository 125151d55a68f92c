package fieldvisit

import (
	"context"
	"time"
)

type FieldVisitRepository interface {
	Create(ctx context.Context, visit FieldVisit) (FieldVisit, error)
	GetByID(ctx context.Context, id string) (FieldVisit, error)
	ListByUser(ctx context.Context, userID string, date *time.Time) ([]FieldVisit, error)
	ListAll(ctx context.Context, date *time.Time) ([]FieldVisit, error)
}
