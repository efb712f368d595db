package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/authz"
	"go-jobportal-backend/pkg/logger"

	"github.com/google/uuid"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	companyRepo     domain.CompanyRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	companyRepo domain.CompanyRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		companyRepo:     companyRepo,
	}
}

// Apply creates a pending application for the calling student. Duplicate
// submissions for the same (job, applicant) pair are rejected atomically by
// the store's unique constraint, so concurrent retries cannot slip through.
func (u *applicationUsecase) Apply(ctx context.Context, jobID string) (*domain.Application, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleStudent, nil); err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	app := &domain.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		ApplicantID: id.UserID,
		Status:      domain.ApplicationStatusPending,
	}

	if err := u.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("You have already applied to this job")
		}
		return nil, apperror.Internal(err)
	}

	// The job's application list is a rebuildable index; a failed append
	// must not undo the application itself.
	if err := u.jobRepo.AppendApplicationID(ctx, job.ID, app.ID); err != nil {
		logger.Log.Warn("failed to append application to job index",
			"job_id", job.ID, "application_id", app.ID, "error", err)
	}

	return app, nil
}

// SetStatus moves an application out of pending. Only the recruiter owning
// the company behind the application's job may call it, and only the
// transitions in the domain table are accepted.
func (u *applicationUsecase) SetStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) (*domain.Application, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleRecruiter, nil); err != nil {
		return nil, err
	}

	if status != domain.ApplicationStatusAccepted && status != domain.ApplicationStatusRejected {
		return nil, apperror.BadRequest("Status must be accepted or rejected")
	}

	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.authorizeJobOwner(ctx, id, app.JobID); err != nil {
		return nil, err
	}

	if !domain.CanTransition(app.Status, status) {
		return nil, apperror.Conflict(fmt.Sprintf("Application is already %s", app.Status))
	}

	// The repository write is guarded on the status still being pending;
	// a concurrent decision between the read above and this write
	// surfaces as ErrInvalidTransition instead of overwriting it.
	if err := u.applicationRepo.UpdateStatus(ctx, app.ID, status); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return nil, apperror.Conflict("Application has already been decided")
		}
		return nil, apperror.Internal(err)
	}
	app.Status = status
	return app, nil
}

func (u *applicationUsecase) ListForJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleRecruiter, nil); err != nil {
		return nil, err
	}
	if err := u.authorizeJobOwner(ctx, id, jobID); err != nil {
		return nil, err
	}

	apps, err := u.applicationRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

func (u *applicationUsecase) ListForStudent(ctx context.Context) ([]domain.Application, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleStudent, nil); err != nil {
		return nil, err
	}

	apps, err := u.applicationRepo.GetByApplicantID(ctx, id.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return apps, nil
}

// authorizeJobOwner verifies that the caller owns the company behind the
// job, resolving both from the store on every call.
func (u *applicationUsecase) authorizeJobOwner(ctx context.Context, id *authz.Identity, jobID string) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}

	company, err := u.companyRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Company not found")
		}
		return apperror.Internal(err)
	}

	return authz.Authorize(id, domain.RoleRecruiter, func() bool {
		return company.RecruiterID == id.UserID
	})
}
