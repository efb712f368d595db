package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/authz"

	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	companyRepo domain.CompanyRepository
}

func NewJobUsecase(jobRepo domain.JobRepository, companyRepo domain.CompanyRepository) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		companyRepo: companyRepo,
	}
}

func (u *jobUsecase) Post(ctx context.Context, input *domain.PostJobInput) (*domain.Job, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleRecruiter, nil); err != nil {
		return nil, err
	}

	owned, err := u.companyRepo.FetchByRecruiterID(ctx, id.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(owned) == 0 {
		return nil, apperror.BadRequest("Register a company before posting jobs")
	}

	company, err := u.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	if err := authz.Authorize(id, domain.RoleRecruiter, func() bool {
		return company.RecruiterID == id.UserID
	}); err != nil {
		return nil, err
	}

	if input.Title == "" || input.Description == "" {
		return nil, apperror.BadRequest("Title and description are required")
	}
	if !domain.ValidJobType(input.JobType) {
		return nil, apperror.BadRequest("Job type must be Full-time, Part-time, Contract or Internship")
	}
	if input.Positions < 1 {
		return nil, apperror.BadRequest("Number of positions must be at least 1")
	}
	if input.ExperienceYears < 0 {
		return nil, apperror.BadRequest("Experience level cannot be negative")
	}

	now := time.Now()
	job := &domain.Job{
		ID:              uuid.NewString(),
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    splitCSV(input.Requirements),
		Salary:          input.Salary,
		ExperienceYears: input.ExperienceYears,
		Location:        input.Location,
		JobType:         input.JobType,
		Positions:       input.Positions,
		CompanyID:       company.ID,
		RecruiterID:     id.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) Update(ctx context.Context, jobID string, input *domain.UpdateJobInput) (*domain.Job, error) {
	id := authz.FromContext(ctx)

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	// Ownership follows the company, re-resolved on every call: if the
	// company changes hands, the former owner loses update rights
	// immediately.
	company, err := u.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	if err := authz.Authorize(id, domain.RoleRecruiter, func() bool {
		return company.RecruiterID == id.UserID
	}); err != nil {
		return nil, err
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = splitCSV(*input.Requirements)
	}
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.ExperienceYears != nil {
		if *input.ExperienceYears < 0 {
			return nil, apperror.BadRequest("Experience level cannot be negative")
		}
		job.ExperienceYears = *input.ExperienceYears
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.JobType != nil {
		if !domain.ValidJobType(*input.JobType) {
			return nil, apperror.BadRequest("Job type must be Full-time, Part-time, Contract or Internship")
		}
		job.JobType = *input.JobType
	}
	if input.Positions != nil {
		if *input.Positions < 1 {
			return nil, apperror.BadRequest("Number of positions must be at least 1")
		}
		job.Positions = *input.Positions
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) List(ctx context.Context, keyword string) ([]domain.Job, error) {
	jobs, err := u.jobRepo.Search(ctx, keyword)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}

func (u *jobUsecase) ListMine(ctx context.Context) ([]domain.Job, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleRecruiter, nil); err != nil {
		return nil, err
	}

	jobs, err := u.jobRepo.FetchByRecruiterID(ctx, id.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return jobs, nil
}
