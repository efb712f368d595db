package domain

import (
	"context"
	"time"
)

// Job types accepted for postings.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// ValidJobType reports whether t is one of the accepted job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          string    `json:"salary"`
	ExperienceYears int       `json:"experience_years"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	Positions       int       `json:"positions"`
	CompanyID       string    `json:"company_id"`
	RecruiterID     string    `json:"recruiter_id"`
	// ApplicationIDs is a denormalized index over the applications table.
	// It is a cache, not the source of truth; listings query applications
	// by job id directly.
	ApplicationIDs []string  `json:"application_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined data for list responses
	CompanyName *string `json:"company_name,omitempty"`
}

type PostJobInput struct {
	Title           string
	Description     string
	Requirements    string // comma-separated, normalized by the usecase
	Salary          string
	ExperienceYears int
	Location        string
	JobType         string
	Positions       int
	CompanyID       string
}

// UpdateJobInput is a partial update; nil fields are left unchanged.
type UpdateJobInput struct {
	Title           *string
	Description     *string
	Requirements    *string
	Salary          *string
	ExperienceYears *int
	Location        *string
	JobType         *string
	Positions       *int
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id string) (*Job, error)
	Search(ctx context.Context, keyword string) ([]Job, error)
	FetchByRecruiterID(ctx context.Context, recruiterID string) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	AppendApplicationID(ctx context.Context, jobID, applicationID string) error
}

type JobUsecase interface {
	Post(ctx context.Context, input *PostJobInput) (*Job, error)
	Update(ctx context.Context, jobID string, input *UpdateJobInput) (*Job, error)
	Get(ctx context.Context, jobID string) (*Job, error)
	List(ctx context.Context, keyword string) ([]Job, error)
	ListMine(ctx context.Context) ([]Job, error)
}
