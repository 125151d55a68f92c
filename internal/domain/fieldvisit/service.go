package fieldvisit

import (
	"context"
)

type FieldVisitService interface {
	CreateFieldVisit(ctx context.Context, req CreateFieldVisitRequest) (FieldVisitResponse, error)
	GetFieldVisit(ctx context.Context, id string) (FieldVisitResponse, error)
	ListFieldVisits(ctx context.Context, filter ListFieldVisitFilter) (ListFieldVisitResponse, error)
}
