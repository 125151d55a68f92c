package department

import "time"

// Department groups users and decides their attendance shape: field
// departments walk the four-step sequence, office departments only two.
type Department struct {
	ID        string
	Name      string
	IsField   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
