package fieldvisit

import "time"

// FieldVisit is a free-form customer visit log, recorded by field users in
// addition to their attendance sequence. Visits are not bound to the
// progression rules; any number may be logged per day.
type FieldVisit struct {
	ID             string
	UserID         string
	Customer       string
	PersonInCharge string
	Remarks        *string
	Time           time.Time
	Latitude       float64
	Longitude      float64
	Address        *string
	PhotoURL       *string
	CreatedAt      time.Time

	// Join
	Username string
	FullName string
}
