package fieldvisit

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/tugasgi/attendance-backend-go/internal/pkg/validator"
)

type CreateFieldVisitRequest struct {
	UserID         string                `json:"user_id"`
	Customer       string                `json:"customer"`
	PersonInCharge string                `json:"person_in_charge"`
	Remarks        *string               `json:"remarks,omitempty"`
	Latitude       float64               `json:"latitude"`
	Longitude      float64               `json:"longitude"`
	PhotoURL       *string               `json:"-"`
	File           multipart.File        `json:"-"`
	FileHeader     *multipart.FileHeader `json:"-"`
}

func (r *CreateFieldVisitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if validator.IsEmpty(r.Customer) {
		errs = append(errs, validator.ValidationError{
			Field:   "customer",
			Message: "customer is required",
		})
	} else if len(r.Customer) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "customer",
			Message: "customer must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.PersonInCharge) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_in_charge",
			Message: "person_in_charge is required",
		})
	} else if len(r.PersonInCharge) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "person_in_charge",
			Message: "person_in_charge must not exceed 255 characters",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader != nil {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "field visit photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFieldVisitFilter struct {
	UserID string
	Date   string // "2006-01-02", optional
}

func (f ListFieldVisitFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != "" {
		if _, err := time.Parse("2006-01-02", f.Date); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FieldVisitResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	Username       string  `json:"username,omitempty"`
	FullName       string  `json:"full_name,omitempty"`
	Customer       string  `json:"customer"`
	PersonInCharge string  `json:"person_in_charge"`
	Remarks        *string `json:"remarks,omitempty"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Address        *string `json:"address,omitempty"`
	PhotoURL       *string `json:"photo_url,omitempty"`
}

type ListFieldVisitResponse struct {
	Visits []FieldVisitResponse `json:"visits"`
}

func NewFieldVisitResponse(v FieldVisit) FieldVisitResponse {
	return FieldVisitResponse{
		ID:             v.ID,
		UserID:         v.UserID,
		Username:       v.Username,
		FullName:       v.FullName,
		Customer:       v.Customer,
		PersonInCharge: v.PersonInCharge,
		Remarks:        v.Remarks,
		Date:           v.Time.Format("2006-01-02"),
		Time:           v.Time.Format("15:04:05"),
		Latitude:       v.Latitude,
		Longitude:      v.Longitude,
		Address:        v.Address,
		PhotoURL:       v.PhotoURL,
	}
}
