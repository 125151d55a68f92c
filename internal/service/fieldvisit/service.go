package fieldvisit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tugasgi/attendance-backend-go/internal/domain/fieldvisit"
	"github.com/tugasgi/attendance-backend-go/internal/domain/user"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/geocode"
	"github.com/tugasgi/attendance-backend-go/internal/service/file"
)

type FieldVisitServiceImpl struct {
	visitRepo   fieldvisit.FieldVisitRepository
	userRepo    user.UserRepository
	fileService file.FileService
	geocoder    geocode.Geocoder
}

func NewFieldVisitService(
	visitRepo fieldvisit.FieldVisitRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
	geocoder geocode.Geocoder,
) fieldvisit.FieldVisitService {
	return &FieldVisitServiceImpl{
		visitRepo:   visitRepo,
		userRepo:    userRepo,
		fileService: fileService,
		geocoder:    geocoder,
	}
}

// CreateFieldVisit implements fieldvisit.FieldVisitService.
func (s *FieldVisitServiceImpl) CreateFieldVisit(ctx context.Context, req fieldvisit.CreateFieldVisitRequest) (fieldvisit.FieldVisitResponse, error) {
	if err := req.Validate(); err != nil {
		return fieldvisit.FieldVisitResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return fieldvisit.FieldVisitResponse{}, err
	}
	if !target.IsField && !target.IsAdmin() {
		return fieldvisit.FieldVisitResponse{}, fieldvisit.ErrNotFieldDepartment
	}

	photoURL := req.PhotoURL
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadFieldVisitPhoto(ctx, target.ID, req.File, req.FileHeader.Filename)
		if err != nil {
			return fieldvisit.FieldVisitResponse{}, fmt.Errorf("failed to store field visit photo: %w", err)
		}
		url, err := s.fileService.GetFileURL(ctx, path, 0)
		if err != nil {
			return fieldvisit.FieldVisitResponse{}, fmt.Errorf("failed to resolve field visit photo url: %w", err)
		}
		photoURL = &url
	}

	// Address lookup is best-effort; a geocoder outage never blocks the log.
	var address *string
	if resolved, err := s.geocoder.ReverseGeocode(ctx, req.Latitude, req.Longitude); err != nil {
		slog.Warn("reverse geocode failed", "error", err)
	} else if resolved != "" {
		address = &resolved
	}

	created, err := s.visitRepo.Create(ctx, fieldvisit.FieldVisit{
		UserID:         target.ID,
		Customer:       req.Customer,
		PersonInCharge: req.PersonInCharge,
		Remarks:        req.Remarks,
		Time:           time.Now().UTC(),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Address:        address,
		PhotoURL:       photoURL,
	})
	if err != nil {
		return fieldvisit.FieldVisitResponse{}, err
	}

	created.Username = target.Username
	created.FullName = target.FullName

	return fieldvisit.NewFieldVisitResponse(created), nil
}

// GetFieldVisit implements fieldvisit.FieldVisitService.
func (s *FieldVisitServiceImpl) GetFieldVisit(ctx context.Context, id string) (fieldvisit.FieldVisitResponse, error) {
	v, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		return fieldvisit.FieldVisitResponse{}, err
	}
	return fieldvisit.NewFieldVisitResponse(v), nil
}

// ListFieldVisits implements fieldvisit.FieldVisitService.
func (s *FieldVisitServiceImpl) ListFieldVisits(ctx context.Context, filter fieldvisit.ListFieldVisitFilter) (fieldvisit.ListFieldVisitResponse, error) {
	if err := filter.Validate(); err != nil {
		return fieldvisit.ListFieldVisitResponse{}, err
	}

	var date *time.Time
	if filter.Date != "" {
		parsed, _ := time.Parse("2006-01-02", filter.Date)
		date = &parsed
	}

	var (
		visits []fieldvisit.FieldVisit
		err    error
	)
	if filter.UserID != "" {
		visits, err = s.visitRepo.ListByUser(ctx, filter.UserID, date)
	} else {
		visits, err = s.visitRepo.ListAll(ctx, date)
	}
	if err != nil {
		return fieldvisit.ListFieldVisitResponse{}, err
	}

	resp := fieldvisit.ListFieldVisitResponse{Visits: []fieldvisit.FieldVisitResponse{}}
	for _, v := range visits {
		resp.Visits = append(resp.Visits, fieldvisit.NewFieldVisitResponse(v))
	}

	return resp, nil
}
