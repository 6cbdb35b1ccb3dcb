package application

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// No transition order is enforced: any status may replace any other.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// JobApplication is one tracked application. ID is an opaque string chosen by
// the client at creation time and never changes afterwards. AppliedDate is
// kept as the raw "YYYY-MM-DD" string the client submitted.
type JobApplication struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	Status      Status    `json:"status"`
	Location    string    `json:"location"`
	AppliedDate string    `json:"appliedDate"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

var (
	ErrEmptyCompany  = errors.New("company must not be empty")
	ErrEmptyPosition = errors.New("position must not be empty")
	ErrEmptyLocation = errors.New("location must not be empty")
	ErrBadStatus     = errors.New("status must be one of applied, interview, offer, rejected")
	ErrBadDate       = errors.New("appliedDate must be a valid YYYY-MM-DD date")
)

func (a *JobApplication) Validate() error {
	if strings.TrimSpace(a.Company) == "" {
		return ErrEmptyCompany
	}
	if strings.TrimSpace(a.Position) == "" {
		return ErrEmptyPosition
	}
	if strings.TrimSpace(a.Location) == "" {
		return ErrEmptyLocation
	}
	if !a.Status.Valid() {
		return ErrBadStatus
	}
	if _, ok := NormalizeDate(a.AppliedDate); !ok {
		return ErrBadDate
	}
	return nil
}

// NormalizeDate reduces a date string to its date-only "YYYY-MM-DD" form.
// Comparison must never depend on a time-of-day component or the local zone,
// so timestamps are truncated in UTC. Returns false for anything that does
// not parse to a real calendar date.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(time.DateOnly, s, time.UTC); err == nil {
		return t.Format(time.DateOnly), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(time.DateOnly), true
	}
	return "", false
}

// FilterByDate returns, in input order, the applications whose normalized
// applied date equals the normalized target. Malformed stored dates never
// match and never error.
func FilterByDate(apps []JobApplication, date string) []JobApplication {
	target, ok := NormalizeDate(date)
	if !ok {
		return []JobApplication{}
	}
	matched := make([]JobApplication, 0)
	for _, a := range apps {
		if d, ok := NormalizeDate(a.AppliedDate); ok && d == target {
			matched = append(matched, a)
		}
	}
	return matched
}

// DistinctDates returns one entry per distinct valid applied date, sorted
// ascending. Three applications on the same day still produce one marker.
func DistinctDates(apps []JobApplication) []string {
	seen := make(map[string]struct{})
	dates := make([]string, 0)
	for _, a := range apps {
		d, ok := NormalizeDate(a.AppliedDate)
		if !ok {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

type Repository interface {
	Create(ctx context.Context, ownerID string, app *JobApplication) error
	Update(ctx context.Context, ownerID string, app *JobApplication) error
	Delete(ctx context.Context, ownerID, id string) error
	GetByID(ctx context.Context, ownerID, id string) (*JobApplication, error)
	List(ctx context.Context, ownerID string) ([]JobApplication, error)
}
