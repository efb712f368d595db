package domain

import (
	"context"
	"time"

	"go-jobportal-backend/pkg/storage"
)

// Company is a recruiter-owned organization. RecruiterID is set at creation
// and immutable; only the owning recruiter may mutate the record.
type Company struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Website        string    `json:"website"`
	Location       string    `json:"location"`
	LogoURI        *string   `json:"logo_uri,omitempty"`
	LogoPreviewURI *string   `json:"logo_preview_uri,omitempty"`
	RecruiterID    string    `json:"recruiter_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CompanyUpdate is a partial update; nil fields are left unchanged.
type CompanyUpdate struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Logo        *storage.Upload
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	FetchByRecruiterID(ctx context.Context, recruiterID string) ([]Company, error)
	Update(ctx context.Context, company *Company) error
}

type CompanyUsecase interface {
	Register(ctx context.Context, name string, logo *storage.Upload) (*Company, error)
	Update(ctx context.Context, id string, update *CompanyUpdate) (*Company, error)
	Get(ctx context.Context, id string) (*Company, error)
	ListMine(ctx context.Context) ([]Company, error)
}
