package domain

import (
	"context"
	"time"
)

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// statusTransitions is the full transition table. Accepted and rejected are
// terminal: they have no outgoing edges.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusPending: {ApplicationStatusAccepted, ApplicationStatusRejected},
}

// ValidApplicationStatus reports whether s names a known status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether the from→to edge exists in the table.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application links a student to a job. At most one application may exist
// per (job, applicant) pair; the store enforces this with a unique index.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	ApplicantID string            `json:"applicant_id"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	// Joined data for list responses
	JobTitle      *string `json:"job_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
	ApplicantName *string `json:"applicant_name,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id string) (*Application, error)
	GetByJobID(ctx context.Context, jobID string) ([]Application, error)
	GetByApplicantID(ctx context.Context, applicantID string) ([]Application, error)
	UpdateStatus(ctx context.Context, id string, status ApplicationStatus) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID string) (*Application, error)
	SetStatus(ctx context.Context, applicationID string, status ApplicationStatus) (*Application, error)
	ListForJob(ctx context.Context, jobID string) ([]Application, error)
	ListForStudent(ctx context.Context) ([]Application, error)
}
