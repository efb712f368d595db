package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/authz"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/storage"

	"github.com/google/uuid"
)

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	userRepo    domain.UserRepository
	ingestor    *storage.Ingestor
}

func NewCompanyUsecase(companyRepo domain.CompanyRepository, userRepo domain.UserRepository, ingestor *storage.Ingestor) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		ingestor:    ingestor,
	}
}

func (u *companyUsecase) Register(ctx context.Context, name string, logo *storage.Upload) (*domain.Company, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleRecruiter, nil); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	// Friendly pre-check; the unique constraint on the name remains the
	// authoritative guard against a concurrent registration.
	if _, err := u.companyRepo.GetByName(ctx, name); err == nil {
		return nil, apperror.Conflict("A company with this name already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	company := &domain.Company{
		ID:          uuid.NewString(),
		Name:        name,
		RecruiterID: id.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if logo != nil {
		asset, err := u.ingestor.Ingest(ctx, logo)
		if err != nil {
			return nil, ingestError(err)
		}
		company.LogoURI = &asset.URI
		company.LogoPreviewURI = asset.PreviewURI
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("A company with this name already exists")
		}
		return nil, apperror.Internal(err)
	}

	// The recruiter's profile mirrors the latest registered company. The
	// pointer is denormalized convenience data, so a failed write here
	// must not undo the registration.
	if recruiter, err := u.userRepo.GetByID(ctx, id.UserID); err == nil {
		recruiter.Profile.CompanyID = &company.ID
		if err := u.userRepo.Update(ctx, recruiter); err != nil {
			logger.Log.Warn("failed to link company to recruiter profile",
				"company_id", company.ID, "recruiter_id", id.UserID, "error", err)
		}
	} else {
		logger.Log.Warn("failed to load recruiter profile for company link",
			"recruiter_id", id.UserID, "error", err)
	}

	return company, nil
}

func (u *companyUsecase) Update(ctx context.Context, companyID string, update *domain.CompanyUpdate) (*domain.Company, error) {
	id := authz.FromContext(ctx)

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}

	// Ownership is evaluated against the freshly loaded record on every
	// call, never against a cached or client-supplied claim.
	if err := authz.Authorize(id, domain.RoleRecruiter, func() bool {
		return company.RecruiterID == id.UserID
	}); err != nil {
		return nil, err
	}

	if update.Name != nil {
		company.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		company.Description = *update.Description
	}
	if update.Website != nil {
		company.Website = *update.Website
	}
	if update.Location != nil {
		company.Location = *update.Location
	}
	if update.Logo != nil {
		asset, err := u.ingestor.Ingest(ctx, update.Logo)
		if err != nil {
			return nil, ingestError(err)
		}
		company.LogoURI = &asset.URI
		company.LogoPreviewURI = asset.PreviewURI
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("A company with this name already exists")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, apperror.Internal(err)
	}
	return company, nil
}

func (u *companyUsecase) ListMine(ctx context.Context) ([]domain.Company, error) {
	id := authz.FromContext(ctx)
	if err := authz.Authorize(id, domain.RoleRecruiter, nil); err != nil {
		return nil, err
	}

	companies, err := u.companyRepo.FetchByRecruiterID(ctx, id.UserID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return companies, nil
}
